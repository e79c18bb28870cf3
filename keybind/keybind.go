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

package keybind

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
)

// Executor is the part of console.Console used to execute bound lines.
type Executor interface {
	ExecuteLineStroked(stroke bool, line string)
}

// Bind is a single key binding.
type Bind struct {
	Key  string
	Line string
}

func (b Bind) String() string {
	return fmt.Sprintf("%s: %s", b.Key, b.Line)
}

// Binds is the list of key bindings.
type Binds struct {
	crit  sync.RWMutex
	binds map[string]string
	exec  Executor
}

// NewBinds is the preferred method of initialisation for the Binds type.
func NewBinds(exec Executor) *Binds {
	return &Binds{
		binds: make(map[string]string),
		exec:  exec,
	}
}

func normalise(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Bind the key to the command line. Any existing binding for the key is
// replaced.
func (b *Binds) Bind(key string, line string) error {
	key = normalise(key)
	if key == "" {
		return curated.Errorf("keybind: empty key name")
	}

	b.crit.Lock()
	defer b.crit.Unlock()
	b.binds[key] = line

	logger.Logf(logger.Allow, "keybind", "%s bound to '%s'", key, line)
	return nil
}

// Unbind removes the binding for the key. Returns false if the key was not
// bound.
func (b *Binds) Unbind(key string) bool {
	key = normalise(key)

	b.crit.Lock()
	defer b.crit.Unlock()

	if _, ok := b.binds[key]; !ok {
		return false
	}
	delete(b.binds, key)

	return true
}

// UnbindAll removes every binding.
func (b *Binds) UnbindAll() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.binds = make(map[string]string)
}

// Lookup returns the command line bound to the key.
func (b *Binds) Lookup(key string) (string, bool) {
	b.crit.RLock()
	defer b.crit.RUnlock()
	line, ok := b.binds[normalise(key)]
	return line, ok
}

// List returns all bindings sorted by key name.
func (b *Binds) List() []Bind {
	b.crit.RLock()
	defer b.crit.RUnlock()

	l := make([]Bind, 0, len(b.binds))
	for k, v := range b.binds {
		l = append(l, Bind{Key: k, Line: v})
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Key < l[j].Key
	})

	return l
}

// HandleKey executes the command line bound to the key. The down argument is
// true if the key has been pressed and false if it has been released.
// Returns false if the key is not bound.
//
// HandleKey must be called from the goroutine that owns the console.
func (b *Binds) HandleKey(key string, down bool) bool {
	line, ok := b.Lookup(key)
	if !ok {
		return false
	}
	b.exec.ExecuteLineStroked(down, line)
	return true
}

// WriteScript writes the bindings as a script of bind commands. Executing
// the script restores the bindings.
func (b *Binds) WriteScript(w io.Writer) error {
	if _, err := io.WriteString(w, "unbindall\n"); err != nil {
		return curated.Errorf("keybind: %v", err)
	}
	for _, bnd := range b.List() {
		if _, err := fmt.Fprintf(w, "bind %s %s\n", bnd.Key, bnd.Line); err != nil {
			return curated.Errorf("keybind: %v", err)
		}
	}
	return nil
}

// RegisterCommands adds the key binding commands to the console.
func (b *Binds) RegisterCommands(con *console.Console) error {
	cmds := []console.Command{
		{
			Name:   "bind",
			Format: "sr",
			Help:   "bind a key to a command",
			Handler: console.HandlerFunc(func(args console.Arguments) error {
				return b.Bind(args.String(0), args.String(1))
			}),
		},
		{
			Name:   "unbind",
			Format: "s",
			Help:   "remove the binding for a key",
			Handler: console.HandlerFunc(func(args console.Arguments) error {
				if !b.Unbind(args.String(0)) {
					con.Printf("key '%s' is not bound", args.String(0))
				}
				return nil
			}),
		},
		{
			Name: "unbindall",
			Help: "remove all key bindings",
			Handler: console.HandlerFunc(func(_ console.Arguments) error {
				b.UnbindAll()
				return nil
			}),
		},
		{
			Name: "binds",
			Help: "list key bindings",
			Handler: console.HandlerFunc(func(_ console.Arguments) error {
				for _, bnd := range b.List() {
					con.Print(bnd.String())
				}
				return nil
			}),
		},
	}

	for _, c := range cmds {
		if err := con.RegisterCommand(c); err != nil {
			return curated.Errorf("keybind: %v", err)
		}
	}

	return nil
}
