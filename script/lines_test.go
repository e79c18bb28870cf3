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

package script_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherconsole/script"
	"github.com/jetsetilly/gopherconsole/test"
)

func readAll(t *testing.T, s string) []string {
	t.Helper()

	var lines []string
	lr := script.NewLineReader(strings.NewReader(s))
	for {
		ln, err := lr.Next()
		if err == io.EOF {
			break
		}
		test.DemandSuccess(t, err)
		lines = append(lines, ln)
	}
	return lines
}

func TestLineReader(t *testing.T) {
	var lines []string

	lines = readAll(t, "")
	test.ExpectEquality(t, len(lines), 0)

	lines = readAll(t, "echo hello\nbind a +jump\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "echo hello")
	test.ExpectEquality(t, lines[1], "bind a +jump")

	// final line without a line ending
	lines = readAll(t, "echo a\necho b")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[1], "echo b")

	// windows line endings
	lines = readAll(t, "echo a\r\necho b\r\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "echo a")
	test.ExpectEquality(t, lines[1], "echo b")

	// blank lines are preserved
	lines = readAll(t, "\n\necho c\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "")
	test.ExpectEquality(t, lines[2], "echo c")
}

func TestLineReader_long(t *testing.T) {
	long := strings.Repeat("x", 100000)
	lines := readAll(t, long+"\n"+long)
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, len(lines[0]), len(long))
	test.ExpectEquality(t, len(lines[1]), len(long))
}
