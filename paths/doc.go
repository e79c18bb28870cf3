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

// Package paths contains functions to prepare paths to gopherconsole
// resources, such as the prefs file and autoexec scripts.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the prefs file:
//
//	p, err := paths.ResourcePath("", "prefs")
//
// The policy of ResourcePath() depends on how the program was built. For
// development builds the base resource path is ".gopherconsole" in the
// program's current directory. For builds using the "release" tag, the base
// path is in the user's config directory, as returned by os.UserConfigDir().
// On a modern Linux system, the path in the example above will be:
//
//	/home/user/.config/gopherconsole/prefs
//
// In both cases the directories are created if they do not exist.
package paths
