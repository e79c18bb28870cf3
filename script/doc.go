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

// Package script runs text files of console commands. A script is plain text
// with one command per line. There is no comment syntax and no line
// continuation. Every line is executed as though it was typed by the user
// (ie. with a stroke value of true), in file order.
//
//	run := script.NewRunner(con)
//	err := run.ExecuteFile("autoexec.cfg")
//
// A file that cannot be opened is reported through the console and results in
// the SourceOpenFailure error. Nothing is executed in that case.
//
// The Watcher type re-executes a script whenever the file is changed on disk.
// The callback given to NewWatcher() is called from the watcher's goroutine so
// it should hand the work to whichever goroutine owns the console.
package script
