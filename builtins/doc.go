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

// Package builtins registers the commands that every console has. The
// Register() function adds the following commands:
//
//	echo r		print the rest of the line
//	exec r		execute a script file
//	help ?s		list commands or show the usage of a single command
//	cmdlist		list the names of all commands
//	log ?i		print the most recent entries in the log (default 10)
//	save_config	save the configuration variables to disk
//	memviz ?s	write a graphviz file describing the command registry
//
// Configuration variables are registered with RegisterInt() and
// RegisterStr(). A variable command with no argument prints the current
// value of the variable. With an argument the variable is set:
//
//	> sensitivity
//	Value: 5
//	> sensitivity 10
package builtins
