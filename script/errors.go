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

package script

// Sentinal error patterns. Use with curated.Is() or curated.Has().
const (
	// SourceOpenFailure is returned by ExecuteFile() when the script file
	// cannot be opened. The message is printed to the console.
	SourceOpenFailure = "failed to open '%s'"

	// ReadFailure is returned when a script stops because of a read error.
	ReadFailure = "script: %v"

	// DepthExceeded is returned when a script executes itself, directly or
	// indirectly, too many times.
	DepthExceeded = "script: %s: scripts nested too deeply"
)
