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

package linerterm

import (
	"testing"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/test"
)

func TestCompleter(t *testing.T) {
	lt := NewLinerTerminal()
	test.ExpectEquality(t, len(lt.complete("ec")), 0)

	reg := console.NewRegistry()
	nop := console.HandlerFunc(func(_ console.Arguments) error { return nil })
	test.ExpectSuccess(t, reg.Register(console.Command{Name: "echo", Format: "r", Handler: nop}))
	test.ExpectSuccess(t, reg.Register(console.Command{Name: "exec", Format: "r", Handler: nop}))

	lt.RegisterTabCompletion(console.NewTabCompletion(reg))

	l := lt.complete("e")
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "echo ")
	test.ExpectEquality(t, l[1], "exec ")
}

func TestReadWithoutInitialise(t *testing.T) {
	lt := NewLinerTerminal()
	_, err := lt.TermRead("> ")
	test.ExpectFailure(t, err)
}
