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

// Package statsview offers a local HTTP server showing runtime statistics of
// the console process: goroutines, heap and GC pauses. It is useful for
// watching the effect of many remote clients or long running scripts.
//
// The server is only built when the statsview build tag is present. Without
// the tag Available() returns false and Launch() does nothing but say so.
//
// After launch the statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview

// DefaultAddress is the address used when an empty address is given to
// Launch().
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"
