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
	"errors"
	"strconv"
	"strings"
)

// the values used to indicate the stroke state to stroke commands.
const (
	strokePressed  = "1"
	strokeReleased = "0"
)

// Arguments are the parsed arguments of an executed line. The arguments are
// owned by the Arguments instance and remain valid for as long as the
// instance exists.
//
// Requesting an argument with an index outside of the range 0 to Num()-1 is
// not an error. The zero value for the requested type is returned instead.
type Arguments struct {
	args   []string
	stroke bool
}

// NewArguments creates an instance of Arguments from a list of strings. Useful
// for testing Handler implementations.
func NewArguments(args ...string) Arguments {
	a := Arguments{args: make([]string, len(args))}
	copy(a.args, args)
	return a
}

// appendStroke adds the stroke argument to the end of the argument list.
func (a *Arguments) appendStroke(stroke bool) {
	if stroke {
		a.args = append(a.args, strokePressed)
	} else {
		a.args = append(a.args, strokeReleased)
	}
	a.stroke = true
}

// Num returns the number of arguments.
func (a Arguments) Num() int {
	return len(a.args)
}

// String returns the argument as a string. Returns the empty string if index
// is out of range.
func (a Arguments) String(index int) string {
	if index < 0 || index >= len(a.args) {
		return ""
	}
	return a.args[index]
}

// Int returns the argument as an integer. Returns zero if index is out of
// range or if the argument does not begin with a number.
//
// Leading white space and a single sign character are allowed. Parsing stops
// at the first non-digit so "12abc" and "12.5" are both read as 12. Numbers
// that are too large for the int type are clamped to the largest (or
// smallest) int value.
func (a Arguments) Int(index int) int {
	if index < 0 || index >= len(a.args) {
		return 0
	}
	return parseInt(a.args[index])
}

// Float returns the argument as a float. Returns zero if index is out of
// range or if the argument does not begin with a number.
//
// As with the Int() function, parsing stops at the first character that
// cannot be part of the number. So "1.5x" is read as 1.5 and "1e" is read as
// 1.
func (a Arguments) Float(index int) float64 {
	if index < 0 || index >= len(a.args) {
		return 0.0
	}
	return parseFloat(a.args[index])
}

// Stroke returns the stroke state of a stroke command. The ok value is false
// if the arguments are not those of a stroke command.
func (a Arguments) Stroke() (pressed bool, ok bool) {
	if !a.stroke || len(a.args) == 0 {
		return false, false
	}
	return a.args[len(a.args)-1] == strokePressed, true
}

// Strings returns a copy of all arguments.
func (a Arguments) Strings() []string {
	c := make([]string, len(a.args))
	copy(c, a.args)
	return c
}

// the characters skipped before a number is parsed.
const numericSpace = " \t\n\v\f\r"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digits returns the index of the first non-digit in the string, starting at
// index i.
func digits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// parseInt parses the longest integer prefix of the string. The default value
// of zero is returned if there is no prefix.
func parseInt(s string) int {
	s = strings.TrimLeft(s, numericSpace)

	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	n = digits(s, n)

	v, err := strconv.Atoi(s[:n])
	if err != nil {
		// out of range errors come with a clamped value
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}

	return v
}

// parseFloat parses the longest decimal floating-point prefix of the string.
// The default value of zero is returned if there is no prefix.
func parseFloat(s string) float64 {
	s = strings.TrimLeft(s, numericSpace)

	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}

	m := digits(s, n)
	mantissa := m > n
	n = m

	if n < len(s) && s[n] == '.' {
		m = digits(s, n+1)
		mantissa = mantissa || m > n+1
		n = m
	}

	if !mantissa {
		return 0.0
	}

	// the exponent is only part of the number if it has at least one digit
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		e := n + 1
		if e < len(s) && (s[e] == '+' || s[e] == '-') {
			e++
		}
		if m = digits(s, e); m > e {
			n = m
		}
	}

	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		// out of range errors come with a value of +/-Inf or zero
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0.0
	}

	return v
}
