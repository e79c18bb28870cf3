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
	"io"
	"os"

	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
)

// Console is the part of console.Console that is used by the Runner.
type Console interface {
	ExecuteLine(line string)
	Print(s string)
}

// MaxDepth is the number of scripts that can be executing at the same time.
// Scripts can execute other scripts with the exec command and so a script
// that executes itself would never end without a limit.
const MaxDepth = 16

// Runner executes scripts through a console.
type Runner struct {
	con   Console
	depth int
}

// NewRunner is the preferred method of initialisation for the Runner type.
func NewRunner(con Console) *Runner {
	return &Runner{con: con}
}

// ExecuteFile runs every line in the named file through the console.
//
// Any error returned has already been printed to the console.
func (run *Runner) ExecuteFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		logger.Logf(logger.Allow, "script", "failed to open '%s': %v", filename, err)
		err = curated.Errorf(SourceOpenFailure, filename)
		run.con.Print(err.Error())
		return err
	}
	defer f.Close()

	logger.Logf(logger.Allow, "script", "executing '%s'", filename)

	return run.execute(filename, f)
}

// ExecuteReader runs every line from the reader through the console.
func (run *Runner) ExecuteReader(r io.Reader) error {
	return run.execute("reader", r)
}

func (run *Runner) execute(name string, r io.Reader) error {
	if run.depth >= MaxDepth {
		err := curated.Errorf(DepthExceeded, name)
		logger.Log(logger.Allow, "script", err)
		run.con.Print(err.Error())
		return err
	}

	run.depth++
	defer func() {
		run.depth--
	}()

	lr := NewLineReader(r)
	for {
		ln, err := lr.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			logger.Logf(logger.Allow, "script", "%s: %v", name, err)
			err = curated.Errorf(ReadFailure, err)
			run.con.Print(err.Error())
			return err
		}
		run.con.ExecuteLine(ln)
	}
}
