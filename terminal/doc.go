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

// Package terminal defines the operations required for command-line
// interaction with the console.
//
// For flexibility, terminal interaction happens through the Terminal
// interface. There are three implementations of this interface: the
// PlainTerminal, the ColorTerminal and the LinerTerminal, found respectively
// in the plainterm, colorterm and linerterm sub-packages.
//
// Output can happen at any time, including while the terminal is waiting in
// TermRead(). Implementations should keep the user's partial input intact in
// that case, if they are able to.
//
// History is not handled by this package. An implementation must implement
// this itself. The ColorTerminal is a good example.
package terminal
