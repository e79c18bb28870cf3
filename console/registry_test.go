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

package console_test

import (
	"testing"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/test"
)

func nop(_ console.Arguments) error {
	return nil
}

func TestRegistry(t *testing.T) {
	reg := console.NewRegistry()
	test.ExpectEquality(t, reg.Len(), 0)

	_, ok := reg.Find("echo")
	test.ExpectFailure(t, ok)

	err := reg.Register(console.Command{Name: "echo", Format: "r", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, err)

	cmd, ok := reg.Find("echo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd.Name, "echo")
	test.ExpectEquality(t, cmd.Format, "r")
	test.ExpectEquality(t, cmd.Usage(), "echo r")

	// lookup is case sensitive
	_, ok = reg.Find("ECHO")
	test.ExpectFailure(t, ok)
}

func TestRegistry_shadowing(t *testing.T) {
	reg := console.NewRegistry()

	test.DemandSuccess(t, reg.Register(console.Command{Name: "foo", Format: "i", Handler: console.HandlerFunc(nop)}))
	test.DemandSuccess(t, reg.Register(console.Command{Name: "bar", Handler: console.HandlerFunc(nop)}))
	test.DemandSuccess(t, reg.Register(console.Command{Name: "foo", Format: "s", Handler: console.HandlerFunc(nop)}))

	cmd, ok := reg.Find("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd.Format, "s")

	// shadowed commands are still counted but are listed only once
	test.ExpectEquality(t, reg.Len(), 3)
	names := reg.Commands()
	test.DemandEquality(t, len(names), 2)
	test.ExpectEquality(t, names[0], "bar")
	test.ExpectEquality(t, names[1], "foo")
}

func TestRegistry_invalid(t *testing.T) {
	reg := console.NewRegistry()
	var err error

	err = reg.Register(console.Command{Name: "", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidCommand))

	err = reg.Register(console.Command{Name: "two words", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidCommand))

	err = reg.Register(console.Command{Name: "i:", Format: "i", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidCommand))
	_, ok := reg.Find("i:")
	test.ExpectFailure(t, ok)

	err = reg.Register(console.Command{Name: "nohandler"})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidCommand))

	err = reg.Register(console.Command{Name: "badformat", Format: "x", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidFormat))

	err = reg.Register(console.Command{Name: "badformat", Format: "ri", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, curated.Is(err, console.InvalidFormat))

	// optional marker after remainder is fine because it is not a descriptor
	err = reg.Register(console.Command{Name: "okformat", Format: "s?r", Handler: console.HandlerFunc(nop)})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, reg.Len(), 1)
}
