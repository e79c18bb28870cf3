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

package console

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt. A
// repeated call to Complete(), with the result of the previous call, will
// cycle through the available options.
type TabCompletion struct {
	reg *Registry

	matches []string
	match   int

	// the part of the input that precedes the word being completed
	preamble string

	// the most recent result of Complete()
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance for the
// specified Registry.
func NewTabCompletion(reg *Registry) *TabCompletion {
	return &TabCompletion{reg: reg}
}

// Complete the input with the name of a registered command. The first word of
// the input is completed. The second word of the input is completed if the
// first word is "help".
//
// The input is returned unchanged if there is nothing to complete.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through the matches if the input is the same as the previous
	// completion
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
		tc.lastCompletion = tc.preamble + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	s := skipBlanks(input)
	n := toBlank(s)

	var word string
	switch {
	case n == len(s):
		word = s
	case s[:n] == "help":
		rest := skipBlanks(s[n:])
		if toBlank(rest) != len(rest) {
			return input
		}
		tc.preamble = "help "
		word = rest
	default:
		return input
	}

	for _, name := range tc.reg.Commands() {
		if strings.HasPrefix(name, word) {
			tc.matches = append(tc.matches, name)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.lastCompletion = tc.preamble + tc.matches[0] + " "
	return tc.lastCompletion
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.preamble = ""
	tc.lastCompletion = ""
}
