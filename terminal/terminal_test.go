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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/terminal"
	"github.com/jetsetilly/gopherconsole/test"
)

func TestCompletionList(t *testing.T) {
	con := console.NewConsole()
	for _, n := range []string{"echo", "exec", "help"} {
		test.DemandSuccess(t, con.Register(n, "?r", console.HandlerFunc(func(_ console.Arguments) error {
			return nil
		})))
	}
	tc := console.NewTabCompletion(con.Registry())

	l := terminal.CompletionList(tc, "e")
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "echo ")
	test.ExpectEquality(t, l[1], "exec ")

	l = terminal.CompletionList(tc, "h")
	test.DemandEquality(t, len(l), 1)
	test.ExpectEquality(t, l[0], "help ")

	l = terminal.CompletionList(tc, "x")
	test.ExpectEquality(t, len(l), 0)
}

func TestStyleFromText(t *testing.T) {
	test.ExpectEquality(t, terminal.StyleFromText("No such command: foo."), terminal.StyleError)
	test.ExpectEquality(t, terminal.StyleFromText("Invalid arguments... Usage: move ii"), terminal.StyleError)
	test.ExpectEquality(t, terminal.StyleFromText("Value: 10"), terminal.StyleNormal)
}
