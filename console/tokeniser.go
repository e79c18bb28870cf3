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

package console

import (
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
)

// MaxLineLength is the maximum number of bytes in a line. Longer lines are
// truncated.
const MaxLineLength = 255

// Line is the result of Tokenise(). The Tail field is the unparsed argument
// portion of the line, to be parsed with ParseArguments().
type Line struct {
	Command string
	Tail    string
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// skipBlanks returns the string with all leading blanks removed.
func skipBlanks(s string) string {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return s[i:]
}

// toBlank returns the index of the first blank in the string or the length of
// the string if there is no blank.
func toBlank(s string) int {
	i := 0
	for i < len(s) && !isBlank(s[i]) {
		i++
	}
	return i
}

// Tokenise divides the line into the command and the argument tail. Returns
// the EmptyLine error if there is no command in the line.
//
// The command is the first blank delimited word in the line. The blank
// immediately following the command is not part of the tail but any other
// blanks are preserved.
func Tokenise(line string) (Line, error) {
	if len(line) > MaxLineLength {
		logger.Logf(logger.Allow, "console", "line truncated to %d characters", MaxLineLength)
		line = line[:MaxLineLength]
	}

	s := skipBlanks(line)
	if len(s) == 0 {
		return Line{}, curated.Errorf(EmptyLine)
	}

	n := toBlank(s)
	ln := Line{Command: s[:n]}
	if n < len(s) {
		ln.Tail = s[n+1:]
	}

	return ln, nil
}
