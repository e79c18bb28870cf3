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

// Package linerterm implements the Terminal interface with the liner line
// editing library. It offers the familiar editing keys of readline and
// history searching with ctrl-r.
package linerterm

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/terminal"
	"github.com/peterh/liner"
)

// LinerTerminal implements the Terminal interface.
type LinerTerminal struct {
	crit   sync.Mutex
	state  *liner.State
	output io.Writer

	tabCompletion terminal.TabCompletion
}

// NewLinerTerminal is the preferred method of initialisation for the
// LinerTerminal type. Liner always reads from stdin and writes to stdout.
func NewLinerTerminal() *LinerTerminal {
	return &LinerTerminal{
		output: os.Stdout,
	}
}

// Initialise performs any setting up required for the terminal.
func (lt *LinerTerminal) Initialise() error {
	if !liner.TerminalSupported() {
		return curated.Errorf("linerterm: terminal not supported")
	}

	lt.state = liner.NewLiner()
	lt.state.SetCtrlCAborts(true)
	lt.state.SetTabCompletionStyle(liner.TabCircular)
	lt.state.SetCompleter(lt.complete)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (lt *LinerTerminal) CleanUp() {
	if lt.state != nil {
		_ = lt.state.Close()
		lt.state = nil
	}
}

func (lt *LinerTerminal) complete(line string) []string {
	lt.crit.Lock()
	tc := lt.tabCompletion
	lt.crit.Unlock()

	if tc == nil {
		return nil
	}
	return terminal.CompletionList(tc, line)
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (lt *LinerTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	lt.crit.Lock()
	defer lt.crit.Unlock()
	lt.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (lt *LinerTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (lt *LinerTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleRemote:
		s = fmt.Sprintf("> %s", s)
	}

	lt.crit.Lock()
	defer lt.crit.Unlock()

	// liner leaves the cursor at the end of the input line
	io.WriteString(lt.output, "\r\n")
	io.WriteString(lt.output, s)
	io.WriteString(lt.output, "\r\n")
}

// TermRead implements the terminal.Input interface.
func (lt *LinerTerminal) TermRead(prompt string) (string, error) {
	if lt.state == nil {
		return "", io.EOF
	}

	s, err := lt.state.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", curated.Errorf(terminal.UserInterrupt)
		}
		return "", err
	}

	if strings.TrimSpace(s) != "" {
		lt.state.AppendHistory(s)
	}

	return s, nil
}
