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

package script

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads lines from an io.Reader one at a time. Line endings are
// removed from the returned lines. Lines of any length are supported.
type LineReader struct {
	r    *bufio.Reader
	done bool
}

// NewLineReader is the preferred method of initialisation for the LineReader
// type.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line. Returns io.EOF when there are no more lines. A
// final line without a line ending is returned as normal.
func (lr *LineReader) Next() (string, error) {
	if lr.done {
		return "", io.EOF
	}

	s, err := lr.r.ReadString('\n')
	if err != nil {
		lr.done = true
		if err != io.EOF {
			return "", err
		}
		if s == "" {
			return "", io.EOF
		}
	}

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")

	return s, nil
}
