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

package keybind_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/keybind"
	"github.com/jetsetilly/gopherconsole/test"
)

type player struct {
	jumping bool
	shots   int
}

func setup(t *testing.T) (*console.Console, *keybind.Binds, *player, *test.Writer) {
	t.Helper()

	con := console.NewConsole()
	w := &test.Writer{}
	con.SetPrintCallback(w.PrintLine)

	p := &player{}
	test.DemandSuccess(t, con.Register("+jump", "", console.HandlerFunc(func(args console.Arguments) error {
		p.jumping, _ = args.Stroke()
		return nil
	})))
	test.DemandSuccess(t, con.Register("fire", "", console.HandlerFunc(func(_ console.Arguments) error {
		p.shots++
		return nil
	})))

	b := keybind.NewBinds(con)
	test.DemandSuccess(t, b.RegisterCommands(con))

	return con, b, p, w
}

func TestHandleKey(t *testing.T) {
	con, b, p, w := setup(t)

	con.ExecuteLine("bind space +jump")
	con.ExecuteLine("bind MOUSE1 fire")
	test.ExpectSuccess(t, w.Compare(""))

	// stroke command sees press and release
	test.ExpectSuccess(t, b.HandleKey("space", true))
	test.ExpectSuccess(t, p.jumping)
	test.ExpectSuccess(t, b.HandleKey("space", false))
	test.ExpectFailure(t, p.jumping)

	// ordinary command sees press only. key names are case insensitive
	test.ExpectSuccess(t, b.HandleKey("mouse1", true))
	test.ExpectSuccess(t, b.HandleKey("Mouse1", false))
	test.ExpectEquality(t, p.shots, 1)

	// unbound key
	test.ExpectFailure(t, b.HandleKey("escape", true))
}

func TestBindCommands(t *testing.T) {
	con, b, _, w := setup(t)

	con.ExecuteLine("bind f1 echo hello world")
	con.ExecuteLine("bind a +jump")
	line, ok := b.Lookup("F1")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, line, "echo hello world")

	con.ExecuteLine("binds")
	test.ExpectSuccess(t, w.Compare("a: +jump\nf1: echo hello world\n"))

	// rebinding replaces the existing binding
	w.Clear()
	con.ExecuteLine("bind a fire")
	con.ExecuteLine("binds")
	test.ExpectSuccess(t, w.Compare("a: fire\nf1: echo hello world\n"))

	w.Clear()
	con.ExecuteLine("unbind a")
	con.ExecuteLine("unbind a")
	test.ExpectSuccess(t, w.Compare("key 'a' is not bound\n"))

	w.Clear()
	con.ExecuteLine("unbindall")
	con.ExecuteLine("binds")
	test.ExpectSuccess(t, w.Compare(""))
	test.ExpectEquality(t, len(b.List()), 0)

	w.Clear()
	con.ExecuteLine("bind a")
	test.ExpectSuccess(t, w.Compare("Invalid arguments... Usage: bind sr\n"))
}

func TestWriteScript(t *testing.T) {
	con, b, _, _ := setup(t)

	test.DemandSuccess(t, b.Bind("space", "+jump"))
	test.DemandSuccess(t, b.Bind("mouse1", "fire"))

	s := &strings.Builder{}
	test.DemandSuccess(t, b.WriteScript(s))
	test.ExpectEquality(t, s.String(), "unbindall\nbind mouse1 fire\nbind space +jump\n")

	// executing the script restores the binds
	b.UnbindAll()
	test.DemandSuccess(t, b.Bind("x", "fire"))
	for _, l := range strings.Split(strings.TrimSpace(s.String()), "\n") {
		con.ExecuteLine(l)
	}
	test.ExpectEquality(t, len(b.List()), 2)
	_, ok := b.Lookup("x")
	test.ExpectFailure(t, ok)
}
