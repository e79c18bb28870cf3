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

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyCtrlA          = 1
	KeyInterrupt      = 3 // end-of-text character
	KeyCtrlD          = 4
	KeyCtrlE          = 5
	KeyBackspace      = 8
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyCtrlU          = 21
	KeyEsc            = 27
	KeyDelete         = 127
)

// list of ASCII codes for characters that can follow KeyEsc.
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// list of ASCII codes for characters that can follow EscCursor (or EscSS3).
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorHome     = 'H'
	CursorEnd      = 'F'

	// the delete key is sent as the sequence ESC [ 3 ~
	CursorDelete = '3'
	CursorTilde  = '~'
)

// ANSI sequences used when redrawing the input line.
const (
	ansiClearLine  = "\r\x1b[K"
	ansiCursorBack = "\x1b[%dD"
)
