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

// Package prefs facilitates the storage of preferential values in the
// application. The Int, String and Bool types hold values that can be set
// from a string, making them suitable for use as console variables.
//
// Values are associated with a key by adding them to a Disk instance. The
// Disk type loads and saves the values to a file. The file is plain text with
// one "key :: value" entry per line. Saving a Disk preserves the entries in
// the file that belong to other Disk instances.
//
// Values can also be given on the command line with PushCommandLineStack().
// These take precedence over the values in the prefs file the next time
// Disk.Load() is called.
package prefs
