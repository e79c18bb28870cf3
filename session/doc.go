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

// Package session ties the console to its inputs and outputs.
//
// A Session owns a console.Console and every supporting type that it needs:
// the script runner, the builtin commands, the key bindings and the
// configuration variables. The console is only ever used by the session's
// own goroutine, which is started with the Run() function. Other goroutines
// (the terminal reader, remote clients, file watchers and key event sources)
// hand work to the session goroutine with the Post() function.
//
// Output from the console is sent to the terminal and to every remote client.
package session
