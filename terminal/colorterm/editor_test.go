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

package colorterm

import (
	"testing"

	"github.com/jetsetilly/gopherconsole/test"
)

func TestRender(t *testing.T) {
	var ed editor

	test.ExpectEquality(t, ed.render("> "), "\r\x1b[K> ")

	for _, r := range "bind a +jump" {
		ed.insert(r)
	}
	test.ExpectEquality(t, ed.render("> "), "\r\x1b[K> bind a +jump")

	// the cursor is moved back to the editing position
	ed.home()
	ed.right()
	test.ExpectEquality(t, ed.render("> "), "\r\x1b[K> bind a +jump\x1b[11D")
}

func TestHistoryLimit(t *testing.T) {
	var ed editor
	for i := 0; i < maxHistory+10; i++ {
		ed.set(string(rune('a' + i%26)))
		ed.commit()
	}
	test.ExpectEquality(t, len(ed.history), maxHistory)
}
