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

// Package keybind maps key names to console command lines. Key presses and
// releases are passed to HandleKey(), which executes the bound command line
// with the stroke value set to true for a press and false for a release.
// This means that stroke commands (those beginning with a plus sign) see both
// the press and the release of the key, while ordinary commands are executed
// only when the key is pressed.
//
// Key names are case insensitive. The RegisterCommands() function adds the
// bind, unbind, unbindall and binds commands to a console.
package keybind
