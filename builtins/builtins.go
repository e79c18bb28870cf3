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

package builtins

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherconsole/console"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
	"github.com/jetsetilly/gopherconsole/paths"
	"github.com/jetsetilly/gopherconsole/prefs"
	"github.com/jetsetilly/gopherconsole/script"
)

// the number of log entries printed by the log command when no number is
// given.
const defaultLogTail = 10

// Builtins is the context shared by all the builtin commands.
type Builtins struct {
	con  *console.Console
	run  *script.Runner
	disk *prefs.Disk
}

// Register the builtin commands with the console. The prefs disk is used by
// the save_config command and can be nil if there is nothing to save.
func Register(con *console.Console, run *script.Runner, disk *prefs.Disk) (*Builtins, error) {
	b := &Builtins{
		con:  con,
		run:  run,
		disk: disk,
	}

	cmds := []console.Command{
		{Name: "echo", Format: "r", Handler: console.HandlerFunc(b.echo),
			Help: "print text to the console"},
		{Name: "exec", Format: "r", Handler: console.HandlerFunc(b.exec),
			Help: "execute the commands in a script file"},
		{Name: "help", Format: "?s", Handler: console.HandlerFunc(b.help),
			Help: "list all commands or show help for a single command"},
		{Name: "cmdlist", Format: "", Handler: console.HandlerFunc(b.cmdlist),
			Help: "list the names of all commands"},
		{Name: "log", Format: "?i", Handler: console.HandlerFunc(b.log),
			Help: fmt.Sprintf("print the last N log entries (default %d)", defaultLogTail)},
		{Name: "save_config", Format: "", Handler: console.HandlerFunc(b.saveConfig),
			Help: "save configuration variables to disk"},
		{Name: "memviz", Format: "?s", Handler: console.HandlerFunc(b.memviz),
			Help: "write a graphviz description of the command registry to a file"},
	}

	for _, c := range cmds {
		if err := con.RegisterCommand(c); err != nil {
			return nil, curated.Errorf("builtins: %v", err)
		}
	}

	return b, nil
}

func (b *Builtins) echo(args console.Arguments) error {
	b.con.Print(args.String(0))
	return nil
}

func (b *Builtins) exec(args console.Arguments) error {
	// the script runner prints its own errors
	_ = b.run.ExecuteFile(args.String(0))
	return nil
}

func (b *Builtins) help(args console.Arguments) error {
	reg := b.con.Registry()

	if args.Num() == 0 {
		for _, n := range reg.Commands() {
			cmd, _ := reg.Find(n)
			b.con.Print(cmd.Usage())
		}
		return nil
	}

	cmd, ok := reg.Find(args.String(0))
	if !ok {
		return curated.Errorf(console.UnknownCommand, args.String(0))
	}

	if cmd.Help != "" {
		b.con.Print(cmd.Help)
	}
	b.con.Printf("Usage: %s", cmd.Usage())

	return nil
}

func (b *Builtins) cmdlist(_ console.Arguments) error {
	for _, n := range b.con.Registry().Commands() {
		b.con.Print(n)
	}
	return nil
}

func (b *Builtins) log(args console.Arguments) error {
	n := defaultLogTail
	if args.Num() > 0 {
		n = args.Int(0)
	}

	s := &strings.Builder{}
	logger.Tail(s, n)

	for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
		if l != "" {
			b.con.Print(l)
		}
	}

	return nil
}

func (b *Builtins) saveConfig(_ console.Arguments) error {
	if b.disk == nil {
		return curated.Errorf("save_config: no configuration file")
	}

	if err := b.disk.Save(); err != nil {
		return curated.Errorf("save_config: %v", err)
	}

	b.con.Printf("configuration saved to %s", b.disk.Path())
	return nil
}

func (b *Builtins) memviz(args console.Arguments) error {
	fn := args.String(0)
	if fn == "" {
		var err error
		fn, err = paths.ResourcePath("memviz", paths.UniqueFilename("memviz", "registry")+".dot")
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	memviz.Map(f, b.con.Registry())

	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	logger.Logf(logger.Allow, "builtins", "memviz written to %s", fn)
	b.con.Printf("registry written to %s", filepath.Clean(fn))

	return nil
}
