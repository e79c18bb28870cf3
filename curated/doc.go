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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what identifies a curated error. The Is() function checks
// whether an error was created with a specific pattern:
//
//	const UnknownCommand = "no such command: %s"
//
//	err := curated.Errorf(UnknownCommand, "jump")
//	if curated.Is(err, UnknownCommand) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain. A chain is made by using a curated error as a placeholder
// value for another curated error:
//
//	f := curated.Errorf("script: %v", err)
//
//	curated.Has(f, UnknownCommand) // true
//	curated.Is(f, UnknownCommand)  // false
//
// Patterns used in this way should be stored as exported string constants,
// suitably named and commented, in the package that creates the error.
//
// The Error() function normalises the message by removing duplicate adjacent
// parts of the chain. Parts are separated by the sub-string ": " as suggested
// on p239 of "The Go Programming Language" (Donovan, Kernighan). This means
// that wrapping an error with the same prefix more than once is harmless.
//
// Curated errors also implement Unwrap(), so that errors.Is() and errors.As()
// from the standard library see through the chain to any wrapped error
// values.
package curated
