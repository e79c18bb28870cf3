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

package colorterm

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherconsole/terminal"
)

// the maximum number of entries in the command history.
const maxHistory = 100

// editor is the state of the line being edited. It knows nothing about the
// terminal.
type editor struct {
	input  []rune
	cursor int

	history []string

	// histIdx is equal to len(history) when the user is not browsing the
	// history. saved is the input as it was before history browsing began
	histIdx int
	saved   []rune

	tabCompletion terminal.TabCompletion
}

func (ed *editor) String() string {
	return string(ed.input)
}

func (ed *editor) empty() bool {
	return len(ed.input) == 0
}

func (ed *editor) insert(r rune) {
	ed.input = append(ed.input, 0)
	copy(ed.input[ed.cursor+1:], ed.input[ed.cursor:])
	ed.input[ed.cursor] = r
	ed.cursor++
	ed.resetCompletion()
}

// backspace removes the character before the cursor.
func (ed *editor) backspace() {
	if ed.cursor == 0 {
		return
	}
	ed.input = append(ed.input[:ed.cursor-1], ed.input[ed.cursor:]...)
	ed.cursor--
	ed.resetCompletion()
}

// delete removes the character under the cursor.
func (ed *editor) delete() {
	if ed.cursor >= len(ed.input) {
		return
	}
	ed.input = append(ed.input[:ed.cursor], ed.input[ed.cursor+1:]...)
	ed.resetCompletion()
}

func (ed *editor) clear() {
	ed.input = ed.input[:0]
	ed.cursor = 0
	ed.resetCompletion()
}

func (ed *editor) left() {
	if ed.cursor > 0 {
		ed.cursor--
	}
}

func (ed *editor) right() {
	if ed.cursor < len(ed.input) {
		ed.cursor++
	}
}

func (ed *editor) home() {
	ed.cursor = 0
}

func (ed *editor) end() {
	ed.cursor = len(ed.input)
}

func (ed *editor) set(s string) {
	ed.input = []rune(s)
	ed.cursor = len(ed.input)
}

func (ed *editor) historyPrev() {
	if ed.histIdx == 0 {
		return
	}
	if ed.histIdx == len(ed.history) {
		ed.saved = append(ed.saved[:0], ed.input...)
	}
	ed.histIdx--
	ed.set(ed.history[ed.histIdx])
	ed.resetCompletion()
}

func (ed *editor) historyNext() {
	if ed.histIdx >= len(ed.history) {
		return
	}
	ed.histIdx++
	if ed.histIdx == len(ed.history) {
		ed.set(string(ed.saved))
	} else {
		ed.set(ed.history[ed.histIdx])
	}
	ed.resetCompletion()
}

func (ed *editor) complete() {
	if ed.tabCompletion == nil {
		return
	}
	// completion only applies to the input before the cursor
	s := ed.tabCompletion.Complete(string(ed.input[:ed.cursor]))
	ed.set(s + string(ed.input[ed.cursor:]))
	ed.cursor = len([]rune(s))
}

func (ed *editor) resetCompletion() {
	if ed.tabCompletion != nil {
		ed.tabCompletion.Reset()
	}
}

// commit returns the current input and starts a new line. Non-empty lines
// are added to the history unless they are the same as the most recent
// history entry.
func (ed *editor) commit() string {
	s := string(ed.input)

	if strings.TrimSpace(s) != "" {
		if len(ed.history) == 0 || ed.history[len(ed.history)-1] != s {
			ed.history = append(ed.history, s)
			if len(ed.history) > maxHistory {
				ed.history = ed.history[len(ed.history)-maxHistory:]
			}
		}
	}

	ed.histIdx = len(ed.history)
	ed.saved = ed.saved[:0]
	ed.clear()

	return s
}

// render returns the ANSI sequence that redraws the prompt and input, with
// the terminal cursor positioned at the editing cursor.
func (ed *editor) render(prompt string) string {
	s := strings.Builder{}
	s.WriteString(ansiClearLine)
	s.WriteString(prompt)
	s.WriteString(string(ed.input))
	if n := len(ed.input) - ed.cursor; n > 0 {
		s.WriteString(fmt.Sprintf(ansiCursorBack, n))
	}
	return s.String()
}
