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

// Handler implementations are invoked by the console when a line names the
// command the Handler was registered with.
//
// An error returned by Execute() is printed through the console's print
// callback. Handlers are free to print their own messages instead.
type Handler interface {
	Execute(args Arguments) error
}

// HandlerFunc allows a plain function to be used as a Handler.
type HandlerFunc func(args Arguments) error

// Execute implements the Handler interface.
func (f HandlerFunc) Execute(args Arguments) error {
	return f(args)
}

type boundHandler[T any] struct {
	fn  func(args Arguments, ctx T) error
	ctx T
}

func (b boundHandler[T]) Execute(args Arguments) error {
	return b.fn(args, b.ctx)
}

// Bind creates a Handler that passes the ctx value to the function every time
// the command is executed. Useful for registering many commands that share a
// single function but which operate on different data. For example:
//
//	for _, v := range variables {
//		con.Register(v.Name, "?i", console.Bind(variableCommand, v))
//	}
func Bind[T any](fn func(args Arguments, ctx T) error, ctx T) Handler {
	return boundHandler[T]{fn: fn, ctx: ctx}
}
