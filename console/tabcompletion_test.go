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
	"testing"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/test"
)

func TestTabCompletion(t *testing.T) {
	con := console.NewConsole()
	for _, n := range []string{"echo", "exec", "help", "+jump", "jump"} {
		test.DemandSuccess(t, con.Register(n, "?r", console.HandlerFunc(nop)))
	}

	tc := console.NewTabCompletion(con.Registry())

	var completion, expected string

	completion = "e"
	expected = "echo "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// next completion option
	expected = "exec "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// cycle back to the first completion option
	expected = "echo "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// stroke commands
	tc.Reset()
	completion = "+j"
	expected = "+jump "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// no matches
	tc.Reset()
	completion = "xyz"
	expected = "xyz"
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// arguments are not completed
	tc.Reset()
	completion = "echo he"
	expected = "echo he"
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)
}

func TestTabCompletion_help(t *testing.T) {
	con := console.NewConsole()
	for _, n := range []string{"echo", "exec", "help"} {
		test.DemandSuccess(t, con.Register(n, "?r", console.HandlerFunc(nop)))
	}

	tc := console.NewTabCompletion(con.Registry())

	var completion, expected string

	completion = "help ex"
	expected = "help exec "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// completion is normalised
	tc.Reset()
	completion = "help   ec"
	expected = "help echo "
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)

	// the third word is never completed
	tc.Reset()
	completion = "help echo e"
	expected = "help echo e"
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, expected)
}
