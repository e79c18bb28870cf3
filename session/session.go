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

package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherconsole/builtins"
	"github.com/jetsetilly/gopherconsole/config"
	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/keybind"
	"github.com/jetsetilly/gopherconsole/logger"
	"github.com/jetsetilly/gopherconsole/prefs"
	"github.com/jetsetilly/gopherconsole/remote"
	"github.com/jetsetilly/gopherconsole/script"
	"github.com/jetsetilly/gopherconsole/terminal"
)

// Prompt is shown by interactive terminals when waiting for input.
const Prompt = "> "

// the number of pending functions that can be posted to the session before
// Post() blocks
const eventQueueLen = 64

// Session is the owner of a console and all of its inputs.
type Session struct {
	cfg  config.Config
	term terminal.Terminal

	con   *console.Console
	run   *script.Runner
	binds *keybind.Binds
	disk  *prefs.Disk

	remote   *remote.Server
	watchers []*script.Watcher

	events chan func()
	done   chan struct{}

	// quit is only accessed by the session goroutine
	quit bool
}

// NewSession is the preferred method of initialisation for the Session type.
// The terminal is initialised when the session is run.
func NewSession(cfg config.Config, term terminal.Terminal) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		term:   term,
		con:    console.NewConsole(),
		events: make(chan func(), eventQueueLen),
		done:   make(chan struct{}),
	}

	s.con.SetPrintCallback(s.output)
	s.run = script.NewRunner(s.con)

	if cfg.Prefs != "" {
		var err error
		s.disk, err = prefs.NewDisk(cfg.Prefs)
		if err != nil {
			return nil, curated.Errorf("session: %v", err)
		}
	}

	if _, err := builtins.Register(s.con, s.run, s.disk); err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	s.binds = keybind.NewBinds(s.con)
	if err := s.binds.RegisterCommands(s.con); err != nil {
		return nil, curated.Errorf("session: %v", err)
	}
	for k, l := range cfg.Binds {
		if err := s.binds.Bind(k, l); err != nil {
			return nil, curated.Errorf("session: %v", err)
		}
	}

	if err := s.registerVariables(); err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	if err := s.registerCommands(); err != nil {
		return nil, curated.Errorf("session: %v", err)
	}

	if s.disk != nil {
		if err := s.disk.Load(true); err != nil {
			return nil, curated.Errorf("session: %v", err)
		}
	}

	return s, nil
}

func (s *Session) registerVariables() error {
	for _, v := range s.cfg.Ints {
		p := &prefs.Int{}
		p.SetRange(v.Min, v.Max)
		if err := p.Set(v.Default); err != nil {
			return err
		}
		if s.disk != nil {
			if err := s.disk.Add(v.Name, p); err != nil {
				return err
			}
		}
		if err := builtins.RegisterInt(s.con, v.Name, v.Help, builtins.IntPref(p)); err != nil {
			return err
		}
	}

	for _, v := range s.cfg.Strs {
		p := &prefs.String{}
		p.SetMaxLen(v.MaxLen)
		if err := p.Set(v.Default); err != nil {
			return err
		}
		if s.disk != nil {
			if err := s.disk.Add(v.Name, p); err != nil {
				return err
			}
		}
		if err := builtins.RegisterStr(s.con, v.Name, v.Help, builtins.StrPref(p)); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) registerCommands() error {
	cmds := []console.Command{
		{
			Name: "quit",
			Help: "end the session",
			Handler: console.HandlerFunc(func(_ console.Arguments) error {
				s.quit = true
				return nil
			}),
		},
		{
			Name:   "writebinds",
			Format: "s",
			Help:   "write the key bindings to a script file",
			Handler: console.HandlerFunc(func(args console.Arguments) error {
				return s.writeBinds(args.String(0))
			}),
		},
	}

	for _, c := range cmds {
		if err := s.con.RegisterCommand(c); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) writeBinds(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("writebinds: %v", err)
	}

	err = s.binds.WriteScript(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("writebinds: %v", err)
	}

	s.con.Printf("binds written to %s", filename)
	return nil
}

// Console returns the console owned by the session. It must only be used
// from within a function passed to Post(), or before Run() is called.
func (s *Session) Console() *console.Console {
	return s.con
}

// output is the console's print callback.
func (s *Session) output(out string) {
	s.term.TermPrintLine(terminal.StyleFromText(out), out)
	if s.remote != nil {
		s.remote.Broadcast(out)
	}
}

// Post a function to be run on the session goroutine. Returns false if the
// session has ended and the function will never be run.
//
// Post must not be called from the session goroutine.
func (s *Session) Post(f func()) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.events <- f:
		return true
	case <-s.done:
		return false
	}
}

// postWait is like Post() but waits for the function to complete.
func (s *Session) postWait(f func()) bool {
	ch := make(chan struct{})
	if !s.Post(func() {
		f()
		close(ch)
	}) {
		return false
	}

	select {
	case <-ch:
		return true
	case <-s.done:
		return false
	}
}

// PostLine posts a command line to the session goroutine. The line will be
// executed with stroke set to true.
func (s *Session) PostLine(line string) bool {
	return s.Post(func() {
		s.con.ExecuteLine(line)
	})
}

// PostKey posts a key event to the session goroutine. Bound keys execute
// their command line with stroke set to down.
func (s *Session) PostKey(key string, down bool) bool {
	return s.Post(func() {
		s.binds.HandleKey(key, down)
	})
}

// feedback is used as the echo writer for the central logger.
type feedback struct {
	term terminal.Output
}

func (f feedback) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		f.term.TermPrintLine(terminal.StyleFeedback, l)
	}
	return len(p), nil
}

// EchoLog sends new entries in the central log to the terminal.
func (s *Session) EchoLog() {
	logger.SetEcho(feedback{term: s.term})
}

func (s *Session) autoexec() {
	for _, fn := range s.cfg.Autoexec {
		// errors have already been printed by the runner
		_ = s.run.ExecuteFile(fn)
	}
}

func (s *Session) startWatchers() {
	for _, fn := range s.cfg.Autoexec {
		w, err := script.NewWatcher(fn, func(filename string) {
			s.Post(func() {
				s.con.Printf("reloading %s", filename)
				_ = s.run.ExecuteFile(filename)
			})
		})
		if err != nil {
			logger.Logf(logger.Allow, "session", "cannot watch %s: %v", fn, err)
			continue
		}
		s.watchers = append(s.watchers, w)
	}
}

func (s *Session) startRemote() error {
	s.remote = remote.NewServer(s.cfg.Remote, func(id string, line string) {
		s.Post(func() {
			if len(id) > 8 {
				id = id[:8]
			}
			s.term.TermPrintLine(terminal.StyleRemote, fmt.Sprintf("%s: %s", id, line))
			s.con.ExecuteLine(line)
		})
	})

	addr, err := s.remote.Start(s.cfg.Remote.Addr)
	if err != nil {
		s.remote = nil
		return err
	}

	s.con.Printf("remote console listening on %s", addr)
	return nil
}

func (s *Session) cleanUp() {
	for _, w := range s.watchers {
		w.Close()
	}
	s.watchers = nil

	if s.remote != nil {
		if err := s.remote.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
		s.remote = nil
	}

	logger.SetEcho(nil)
}

// reader sends lines from the terminal to the session goroutine. It waits
// for each line to be executed before reading the next, so that the prompt
// follows the output of the previous command.
func (s *Session) reader() {
	for {
		line, err := s.term.TermRead(Prompt)
		if err != nil {
			if err != io.EOF && !curated.Is(err, terminal.UserInterrupt) {
				logger.Logf(logger.Allow, "session", "terminal: %v", err)
			}
			s.Post(func() {
				s.quit = true
			})
			return
		}

		if !s.postWait(func() {
			s.term.TermPrintLine(terminal.StyleEcho, line)
			s.con.ExecuteLine(line)
		}) {
			return
		}
	}
}

// Run the session until the quit command is executed, the terminal input
// ends or the context is cancelled. The autoexec scripts are executed before
// the terminal is read.
//
// Run can only be called once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	if err := s.term.Initialise(); err != nil {
		return curated.Errorf("session: %v", err)
	}
	defer s.term.CleanUp()

	s.term.RegisterTabCompletion(console.NewTabCompletion(s.con.Registry()))

	defer s.cleanUp()

	if s.cfg.Remote.Addr != "" {
		if err := s.startRemote(); err != nil {
			return curated.Errorf("session: %v", err)
		}
	}

	s.autoexec()

	if s.cfg.Watch {
		s.startWatchers()
	}

	go s.reader()

	for !s.quit {
		select {
		case <-ctx.Done():
			return nil
		case f := <-s.events:
			f()
		}
	}

	return nil
}

// RunScripts executes the scripts, followed by the command lines, on the
// calling goroutine and then returns. The autoexec scripts are not run and
// the terminal is not read. Useful for non-interactive sessions.
func (s *Session) RunScripts(filenames []string, lines []string) error {
	if err := s.term.Initialise(); err != nil {
		return curated.Errorf("session: %v", err)
	}
	defer s.term.CleanUp()

	for _, fn := range filenames {
		if err := s.run.ExecuteFile(fn); err != nil {
			return curated.Errorf("session: %v", err)
		}
	}

	for _, l := range lines {
		s.con.ExecuteLine(l)
	}

	return nil
}
