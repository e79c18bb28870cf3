// This file is part of Gopherconsole.
//
// Gopherconsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherconsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherconsole.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import "strings"

// Sentinal errors returned by TermRead(). An io.EOF error is returned when
// the user indicates that there is no more input.
const (
	UserInterrupt = "user interrupt"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input. The line does not include the
	// line ending.
	TermRead(prompt string) (string, error)

	// IsInteractive() should return true for implementations that require
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the console's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all terminal implementations will need to
	// do anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible.
	CleanUp()

	// RegisterTabCompletion adds a tab completion implementation to the
	// terminal. Not all implementations need to respond meaningfully to
	// this.
	RegisterTabCompletion(TabCompletion)
}

// TabCompletion defines the operations required for tab completion. The
// console package contains a suitable implementation.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

// CompletionList returns every completion option for the input as a list. For
// terminals that prefer to cycle through the options themselves.
func CompletionList(tc TabCompletion, input string) []string {
	defer tc.Reset()

	tc.Reset()
	first := tc.Complete(input)
	if first == input {
		return nil
	}

	l := []string{first}
	for {
		c := tc.Complete(l[len(l)-1])
		if c == first || c == l[len(l)-1] {
			break
		}
		l = append(l, c)
	}

	return l
}

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// StyleEcho is the user input being repeated back. Terminals that echo
	// input as it is typed do not need to print this style.
	StyleEcho Style = iota

	// StyleNormal is the output of a command.
	StyleNormal

	// StyleFeedback is information from the application rather than from a
	// command. For example, log entries echoed to the terminal.
	StyleFeedback

	// StyleRemote is text that originates from a remote console client.
	StyleRemote

	// StyleError is used for error messages.
	StyleError
)

// StyleFromText makes a best guess at the style of console output. The
// console only deals in plain text so this is only a heuristic.
func StyleFromText(s string) Style {
	switch {
	case strings.HasPrefix(s, "No such command:"):
		return StyleError
	case strings.HasPrefix(s, "Invalid arguments..."):
		return StyleError
	case strings.HasPrefix(s, "failed to open"):
		return StyleError
	}
	return StyleNormal
}
