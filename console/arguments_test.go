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

package console_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/test"
)

func TestArguments_int(t *testing.T) {
	args := console.NewArguments("10", "-20", "+30", "12abc", "abc", "1.5", "  7", "", "-", "99999999999999999999999", "-99999999999999999999999")

	test.ExpectEquality(t, args.Num(), 11)
	test.ExpectEquality(t, args.Int(0), 10)
	test.ExpectEquality(t, args.Int(1), -20)
	test.ExpectEquality(t, args.Int(2), 30)
	test.ExpectEquality(t, args.Int(3), 12)
	test.ExpectEquality(t, args.Int(4), 0)
	test.ExpectEquality(t, args.Int(5), 1)
	test.ExpectEquality(t, args.Int(6), 7)
	test.ExpectEquality(t, args.Int(7), 0)
	test.ExpectEquality(t, args.Int(8), 0)
	test.ExpectEquality(t, args.Int(9), math.MaxInt)
	test.ExpectEquality(t, args.Int(10), math.MinInt)
}

func TestArguments_float(t *testing.T) {
	args := console.NewArguments("1.5", "-0.25", ".5", "3", "1.5x", "1e3", "1e", "2.5e-1z", "abc", ".", "-", "1e999")

	test.ExpectApproximate(t, args.Float(0), 1.5, 0.0001)
	test.ExpectApproximate(t, args.Float(1), -0.25, 0.0001)
	test.ExpectApproximate(t, args.Float(2), 0.5, 0.0001)
	test.ExpectApproximate(t, args.Float(3), 3.0, 0.0001)
	test.ExpectApproximate(t, args.Float(4), 1.5, 0.0001)
	test.ExpectApproximate(t, args.Float(5), 1000.0, 0.0001)
	test.ExpectApproximate(t, args.Float(6), 1.0, 0.0001)
	test.ExpectApproximate(t, args.Float(7), 0.25, 0.0001)
	test.ExpectEquality(t, args.Float(8), 0.0)
	test.ExpectEquality(t, args.Float(9), 0.0)
	test.ExpectEquality(t, args.Float(10), 0.0)
	test.ExpectSuccess(t, math.IsInf(args.Float(11), 1))
}

func TestArguments_outOfRange(t *testing.T) {
	args := console.NewArguments("foo")

	test.ExpectEquality(t, args.String(1), "")
	test.ExpectEquality(t, args.String(-1), "")
	test.ExpectEquality(t, args.Int(1), 0)
	test.ExpectEquality(t, args.Int(-1), 0)
	test.ExpectEquality(t, args.Float(1), 0.0)
	test.ExpectEquality(t, args.Float(-1), 0.0)

	// empty arguments
	args = console.NewArguments()
	test.ExpectEquality(t, args.Num(), 0)
	test.ExpectEquality(t, args.String(0), "")
}

func TestArguments_ownership(t *testing.T) {
	s := []string{"foo", "bar"}
	args := console.NewArguments(s...)
	s[0] = "baz"
	test.ExpectEquality(t, args.String(0), "foo")

	c := args.Strings()
	c[1] = "baz"
	test.ExpectEquality(t, args.String(1), "bar")
}

func TestArguments_noStroke(t *testing.T) {
	args := console.NewArguments("1")
	_, ok := args.Stroke()
	test.ExpectFailure(t, ok)
}
