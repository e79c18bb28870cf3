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

// Package colorterm implements the Terminal interface. It puts the terminal
// into cbreak mode and provides line editing, command history, tab completion
// and coloured output.
//
// Output sent to the terminal while the user is typing is printed above the
// input line. The user's partial input is redrawn after the output.
package colorterm

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/terminal"
)

// ColorTerminal implements the Terminal interface with a basic ANSI terminal.
type ColorTerminal struct {
	source io.Reader
	input  *bufio.Reader
	output io.Writer

	mode        mode
	interactive bool

	// crit protects the output and the editor
	crit    sync.Mutex
	ed      editor
	prompt  string
	reading bool

	styles      map[terminal.Style]lipgloss.Style
	promptStyle lipgloss.Style
}

// NewColorTerminal creates a ColorTerminal for the input and output. If the
// input and output are os.Stdin and os.Stdout, NewColorTerminal(nil, nil)
// can be used.
func NewColorTerminal(input io.Reader, output io.Writer) *ColorTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	r := lipgloss.NewRenderer(output)

	return &ColorTerminal{
		source: input,
		input:  bufio.NewReader(input),
		output: output,
		styles: map[terminal.Style]lipgloss.Style{
			terminal.StyleNormal:   r.NewStyle(),
			terminal.StyleFeedback: r.NewStyle().Faint(true),
			terminal.StyleRemote:   r.NewStyle().Foreground(lipgloss.Color("6")),
			terminal.StyleError:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
		promptStyle: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	var err error
	ct.interactive, err = ct.mode.cbreak(ct.source)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	if ct.interactive {
		io.WriteString(ct.output, ansiClearLine)
	}
	_ = ct.mode.restore()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.ed.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return ct.interactive
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	// input has already been echoed by the editor
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = "* " + s
	}

	ct.crit.Lock()
	defer ct.crit.Unlock()

	redraw := ct.interactive && ct.reading
	if redraw {
		io.WriteString(ct.output, ansiClearLine)
	}

	st, ok := ct.styles[style]
	if !ok {
		st = ct.styles[terminal.StyleNormal]
	}
	io.WriteString(ct.output, st.Render(s))
	io.WriteString(ct.output, "\n")

	if redraw {
		ct.redraw()
	}
}

// redraw the prompt and input line. must be called with the critical section
// locked.
func (ct *ColorTerminal) redraw() {
	if !ct.interactive {
		return
	}
	io.WriteString(ct.output, ct.ed.render(ct.promptStyle.Render(ct.prompt)))
}

// readEscape reads the rest of an escape sequence and returns the final
// character. Returns zero if the sequence is not recognised.
func (ct *ColorTerminal) readEscape() (rune, error) {
	r, _, err := ct.input.ReadRune()
	if err != nil {
		return 0, err
	}
	if r != EscCursor && r != EscSS3 {
		return 0, nil
	}

	r, _, err = ct.input.ReadRune()
	if err != nil {
		return 0, err
	}

	if r == CursorDelete {
		t, _, err := ct.input.ReadRune()
		if err != nil {
			return 0, err
		}
		if t != CursorTilde {
			return 0, nil
		}
	}

	return r, nil
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.crit.Lock()
	ct.prompt = prompt
	ct.reading = true
	ct.redraw()
	ct.crit.Unlock()

	defer func() {
		ct.crit.Lock()
		ct.reading = false
		ct.crit.Unlock()
	}()

	for {
		r, _, err := ct.input.ReadRune()
		if err != nil {
			// a partial line at the end of the input is returned as normal
			var line string
			ct.crit.Lock()
			if err == io.EOF && !ct.ed.empty() {
				line = ct.ed.commit()
				err = nil
			}
			ct.crit.Unlock()
			return line, err
		}

		var esc rune
		if r == KeyEsc {
			esc, err = ct.readEscape()
			if err != nil {
				return "", err
			}
		}

		line, done, err := ct.key(r, esc)
		if done || err != nil {
			return line, err
		}
	}
}

// key handles a single key press. Returns true when the line is complete.
func (ct *ColorTerminal) key(r rune, esc rune) (string, bool, error) {
	ct.crit.Lock()
	defer ct.crit.Unlock()

	switch r {
	case KeyCarriageReturn, KeyLineFeed:
		line := ct.ed.commit()
		if ct.interactive {
			io.WriteString(ct.output, "\n")
		}
		return line, true, nil

	case KeyInterrupt:
		ct.ed.clear()
		if ct.interactive {
			io.WriteString(ct.output, "\n")
		}
		return "", true, curated.Errorf(terminal.UserInterrupt)

	case KeyCtrlD:
		if ct.ed.empty() {
			return "", true, io.EOF
		}
		ct.ed.delete()

	case KeyBackspace, KeyDelete:
		ct.ed.backspace()

	case KeyTab:
		ct.ed.complete()

	case KeyCtrlA:
		ct.ed.home()

	case KeyCtrlE:
		ct.ed.end()

	case KeyCtrlU:
		ct.ed.clear()

	case KeyEsc:
		switch esc {
		case CursorUp:
			ct.ed.historyPrev()
		case CursorDown:
			ct.ed.historyNext()
		case CursorForward:
			ct.ed.right()
		case CursorBackward:
			ct.ed.left()
		case CursorHome:
			ct.ed.home()
		case CursorEnd:
			ct.ed.end()
		case CursorDelete:
			ct.ed.delete()
		}

	default:
		// ignore all other control characters
		if r < ' ' {
			return "", false, nil
		}
		ct.ed.insert(r)
	}

	ct.redraw()

	return "", false, nil
}
