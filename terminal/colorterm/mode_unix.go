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

//go:build !windows

package colorterm

import (
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// mode records the original state of the terminal so that it can be
// restored.
type mode struct {
	fd   uintptr
	orig unix.Termios
	set  bool
}

// cbreak puts the terminal into cbreak mode. Input is available a character
// at a time and is not echoed. Signal characters (eg. ctrl-c) still cause a
// signal to be sent to the process.
//
// Returns false if the file is not a terminal.
func (m *mode) cbreak(f any) (bool, error) {
	fd, ok := f.(interface{ Fd() uintptr })
	if !ok {
		return false, nil
	}
	m.fd = fd.Fd()

	if err := termios.Tcgetattr(m.fd, &m.orig); err != nil {
		// not a terminal
		return false, nil
	}

	attr := m.orig
	termios.Cfmakecbreak(&attr)
	if err := termios.Tcsetattr(m.fd, termios.TCSANOW, &attr); err != nil {
		return false, err
	}
	m.set = true

	return true, nil
}

// restore the terminal to the state it was in before cbreak() was called.
func (m *mode) restore() error {
	if !m.set {
		return nil
	}
	m.set = false
	return termios.Tcsetattr(m.fd, termios.TCSANOW, &m.orig)
}
