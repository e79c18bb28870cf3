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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and return false
// if the expectation is not met. The Demand*() functions are the same except
// that they end the test immediately with t.Fatalf(). Demand functions are
// useful when the tested value is used by later parts of the test and so must
// be correct. For example, testing the number of arguments before reading
// them.
//
// The success and failure functions interpret values according to their
// type. Currently supported types:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The nil type is considered a success because of how errors usually work
// (nil to indicate no error). This means that ExpectFailure(t, nil) will
// always fail.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Compare() function tests the captured output for
// equality with an expected string. Lines() returns a copy of the output
// split into lines, which is useful for testing the output of a console
// command.
package test
