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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherconsole/prefs"
	"github.com/jetsetilly/gopherconsole/test"
)

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// surrounding space is removed and the unused entries are sorted
	prefs.PushCommandLineStack("  sensitivity:: 5 ; name::player one")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "name::player one; sensitivity::5")

	// badly formed entries are ignored
	prefs.PushCommandLineStack("sensitivity;name::bob;::nokey")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "name::bob")

	// values are consumed when they are read
	prefs.PushCommandLineStack("a::1;b::2")
	ok, v := prefs.GetCommandLinePref("a")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "1")
	ok, _ = prefs.GetCommandLinePref("a")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "b::2")

	// only the top of the stack is visible
	prefs.PushCommandLineStack("a::1")
	prefs.PushCommandLineStack("b::2")
	ok, _ = prefs.GetCommandLinePref("a")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "b::2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "a::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
