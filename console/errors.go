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

// Sentinal error patterns. Use with curated.Is() or curated.Has().
const (
	// EmptyLine is returned by Tokenise() if the line contains no command.
	// It is never reported to the user.
	EmptyLine = "console: empty line"

	// UnknownCommand is reported when a line names a command that has not
	// been registered.
	UnknownCommand = "No such command: %s."

	// InvalidArguments is reported when the arguments of a line do not
	// satisfy the format of the command. Wraps the MissingArgument error.
	InvalidArguments = "Invalid arguments... Usage: %s %s"

	// MissingArgument is returned by ParseArguments() when a required
	// argument is not present.
	MissingArgument = "console: missing argument for '%c' descriptor"

	// InvalidFormat is returned on registration of a command with an
	// unusable format string.
	InvalidFormat = "console: invalid format for %s: %s"

	// InvalidCommand is returned on registration of a command that can
	// never be found or executed.
	InvalidCommand = "console: invalid command: %s"
)
