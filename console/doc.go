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

// Package console turns a line of text into a call to a registered command
// handler. It is the runtime control surface of an interactive application,
// used to bind string commands to behaviour and to configuration variables.
//
// Commands are registered with a name, a format string and a Handler:
//
//	con := console.NewConsole()
//	con.SetPrintCallback(func(s string) { fmt.Println(s) })
//
//	con.Register("move", "ii", console.HandlerFunc(func(args console.Arguments) error {
//		player.Move(args.Int(0), args.Int(1))
//		return nil
//	}))
//
//	con.ExecuteLine("move 10 20")
//
// The format string describes the arguments of the command, one character per
// argument, consumed left to right:
//
//	i	a single token, to be read as an integer
//	f	a single token, to be read as a float
//	s	a single token, to be read as a string
//	r	the remainder of the line, including any embedded blanks
//	?	all subsequent arguments are optional
//
// The r descriptor consumes everything to the end of the line and so must be
// the last argument descriptor in a format string. Blanks are the space, tab
// and newline characters. There is no quoting or escaping.
//
// Arguments are validated for presence only. Numeric conversion happens when
// the handler asks for an argument with Arguments.Int() or Arguments.Float().
// A token that does not begin with a number is read as zero. Asking for an
// argument that does not exist returns the zero value for the type. Input
// after the last descriptor is ignored.
//
// Commands whose names begin with a plus sign are "stroke" commands. The
// ExecuteLineStroked() function takes a stroke argument, which is true when a
// bound key is pressed and false when it is released. Ordinary commands are
// only executed when stroke is true. Stroke commands are executed in both
// cases and receive an additional, final argument of "1" or "0" to indicate
// which. The Arguments.Stroke() function is a convenient way of reading it.
//
// Lines longer than MaxLineLength are silently truncated. Empty lines are
// ignored. Unknown commands and invalid arguments result in a message sent
// to the print callback. No error is ever fatal.
//
// The console is not safe for concurrent execution. Lines from concurrent
// sources should be funnelled into a single goroutine. Registration is safe
// at any time.
package console
