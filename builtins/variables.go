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

package builtins

import (
	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/prefs"
)

// IntVariable connects an integer configuration variable to the console. An
// error returned by Set is printed to the console.
type IntVariable struct {
	Get func() int
	Set func(v int) error
}

// StrVariable connects a string configuration variable to the console.
type StrVariable struct {
	Get func() string
	Set func(v string) error
}

type intBinding struct {
	con *console.Console
	v   IntVariable
}

type strBinding struct {
	con *console.Console
	v   StrVariable
}

func intVariableCommand(args console.Arguments, b intBinding) error {
	if args.Num() == 0 {
		b.con.Printf("Value: %d", b.v.Get())
		return nil
	}
	return b.v.Set(args.Int(0))
}

func strVariableCommand(args console.Arguments, b strBinding) error {
	if args.Num() == 0 {
		b.con.Printf("Value: %s", b.v.Get())
		return nil
	}
	return b.v.Set(args.String(0))
}

// RegisterInt adds a command for the integer variable. The command is named
// after the variable and takes an optional integer argument.
func RegisterInt(con *console.Console, name string, help string, v IntVariable) error {
	return con.RegisterCommand(console.Command{
		Name:    name,
		Format:  "?i",
		Help:    help,
		Handler: console.Bind(intVariableCommand, intBinding{con: con, v: v}),
	})
}

// RegisterStr adds a command for the string variable. The command is named
// after the variable and takes the rest of the line as an optional argument.
func RegisterStr(con *console.Console, name string, help string, v StrVariable) error {
	return con.RegisterCommand(console.Command{
		Name:    name,
		Format:  "?r",
		Help:    help,
		Handler: console.Bind(strVariableCommand, strBinding{con: con, v: v}),
	})
}

// IntPref adapts a prefs.Int for use as an IntVariable.
func IntPref(p *prefs.Int) IntVariable {
	return IntVariable{
		Get: func() int {
			return p.Get().(int)
		},
		Set: func(v int) error {
			return p.Set(v)
		},
	}
}

// StrPref adapts a prefs.String for use as a StrVariable.
func StrPref(p *prefs.String) StrVariable {
	return StrVariable{
		Get: func() string {
			return p.String()
		},
		Set: func(v string) error {
			return p.Set(v)
		},
	}
}
