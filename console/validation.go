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
	"fmt"

	"github.com/jetsetilly/gopherconsole/curated"
)

// list of argument descriptors that can appear in a format string.
const (
	descInt       = 'i'
	descFloat     = 'f'
	descString    = 's'
	descRemainder = 'r'
	descOptional  = '?'
)

// checkFormat makes sure the format string only contains known descriptors
// and that the remainder descriptor is the last argument in the format.
func checkFormat(format string) error {
	remainder := false
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case descInt, descFloat, descString, descRemainder:
			if remainder {
				return fmt.Errorf("'%c' descriptor follows remainder descriptor", format[i])
			}
			remainder = format[i] == descRemainder
		case descOptional:
		default:
			return fmt.Errorf("unknown descriptor '%c'", format[i])
		}
	}
	return nil
}

// ParseArguments divides the tail of a line into arguments according to the
// format string. See the package documentation for the format syntax.
//
// A missing argument that is not in the optional part of the format results
// in the MissingArgument error. Any input remaining after the last descriptor
// is ignored.
func ParseArguments(tail string, format string) (Arguments, error) {
	args := Arguments{args: make([]string, 0, len(format))}
	optional := false

	for i := 0; i < len(format); i++ {
		d := format[i]

		if d == descOptional {
			optional = true
			continue
		}

		tail = skipBlanks(tail)
		if len(tail) == 0 {
			if !optional {
				return args, curated.Errorf(MissingArgument, d)
			}
			break // for loop
		}

		// the remainder descriptor takes everything and there can be no more
		// arguments
		if d == descRemainder {
			args.args = append(args.args, tail)
			break // for loop
		}

		n := toBlank(tail)
		args.args = append(args.args, tail[:n])

		// consume the delimiting blank
		if n < len(tail) {
			n++
		}
		tail = tail[n:]
	}

	return args, nil
}
