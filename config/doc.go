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

// Package config reads the application configuration file. The file can be
// TOML or YAML. The format is chosen by the file extension: ".toml" for TOML
// and ".yaml" or ".yml" for YAML.
//
// The configuration declares the console variables, key bindings and
// autoexec scripts of the application, along with settings for the terminal
// and the remote console. An example TOML file:
//
//	terminal = "color"
//	autoexec = ["autoexec.cfg"]
//	watch = true
//
//	[[int]]
//	name = "sensitivity"
//	default = 5
//	min = 1
//	max = 100
//	help = "mouse sensitivity"
//
//	[[string]]
//	name = "player_name"
//	default = "nameless tee"
//	maxlen = 16
//
//	[binds]
//	space = "+jump"
//	f1 = "echo hello"
//
//	[remote]
//	addr = "localhost:8303"
//	password = "secret"
//	rate = 10
//	burst = 20
package config
