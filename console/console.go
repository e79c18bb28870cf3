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
	"fmt"

	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
)

// Console executes lines of text by dispatching them to the commands in its
// Registry.
type Console struct {
	reg   *Registry
	print func(string)
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole() *Console {
	return &Console{
		reg: NewRegistry(),
	}
}

// Registry returns the console's command registry.
func (con *Console) Registry() *Registry {
	return con.reg
}

// Register a new command with the console. See package documentation for the
// syntax of the format string.
func (con *Console) Register(name string, format string, h Handler) error {
	return con.reg.Register(Command{Name: name, Format: format, Handler: h})
}

// RegisterCommand is like Register() but takes a fully formed Command.
func (con *Console) RegisterCommand(cmd Command) error {
	return con.reg.Register(cmd)
}

// SetPrintCallback sets the function that receives all text output by the
// console. Text printed when there is no callback is discarded.
func (con *Console) SetPrintCallback(f func(string)) {
	con.print = f
}

// Print text through the print callback.
func (con *Console) Print(s string) {
	if con.print != nil {
		con.print(s)
	}
}

// Printf is like Print() but with a formatting pattern.
func (con *Console) Printf(pattern string, args ...any) {
	con.Print(fmt.Sprintf(pattern, args...))
}

// ExecuteLine executes a line as though it was a key press. It is the same as
// ExecuteLineStroked(true, line).
func (con *Console) ExecuteLine(line string) {
	con.ExecuteLineStroked(true, line)
}

// ExecuteLineStroked executes a line with the specified stroke state. A stroke
// value of false (a key release) is ignored unless the command is a stroke
// command.
//
// Problems with the line are reported through the print callback.
func (con *Console) ExecuteLineStroked(stroke bool, line string) {
	_ = con.Execute(stroke, line)
}

// Execute is the same as ExecuteLineStroked() except that an error is
// returned in addition to being reported through the print callback. An empty
// line is not an error.
func (con *Console) Execute(stroke bool, line string) error {
	err := con.execute(stroke, line)
	if err != nil {
		if curated.Is(err, EmptyLine) {
			return nil
		}
		con.Print(err.Error())
	}
	return err
}

func (con *Console) execute(stroke bool, line string) error {
	ln, err := Tokenise(line)
	if err != nil {
		return err
	}

	cmd, ok := con.reg.Find(ln.Command)
	if !ok {
		return curated.Errorf(UnknownCommand, ln.Command)
	}

	isStroke := cmd.IsStroke()

	// ordinary commands only react to key presses
	if !stroke && !isStroke {
		return nil
	}

	args, err := ParseArguments(ln.Tail, cmd.Format)
	if err != nil {
		logger.Logf(logger.Allow, "console", "%s: %v", cmd.Name, err)
		return curated.Errorf(InvalidArguments, cmd.Name, cmd.Format)
	}

	if isStroke {
		args.appendStroke(stroke)
	}

	err = cmd.Handler.Execute(args)
	if err != nil {
		logger.Logf(logger.Allow, "console", "%s: %v", cmd.Name, err)
		return err
	}

	return nil
}
