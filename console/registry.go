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

package console

import (
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherconsole/curated"
)

// Command is a single entry in the Registry.
type Command struct {
	Name    string
	Format  string
	Handler Handler

	// Help is optional text describing the command
	Help string
}

// Usage returns the usage string for the command.
func (cmd Command) Usage() string {
	return strings.TrimSpace(cmd.Name + " " + cmd.Format)
}

// IsStroke returns true if the command is a stroke command.
func (cmd Command) IsStroke() bool {
	return strings.HasPrefix(cmd.Name, "+")
}

// Registry is the list of commands known to a console. Commands cannot be
// removed once they have been registered but a command can be replaced by
// registering another command with the same name.
type Registry struct {
	crit sync.RWMutex

	// commands are stored in order of registration. lookups search from the
	// end of the list so that the most recent registration is found first
	commands []*Command
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		commands: make([]*Command, 0),
	}
}

// Register adds a command to the registry. A command with the same name as an
// existing command will shadow the earlier command.
//
// The command name must not be empty and must not contain any blank
// characters or a colon. The format string is checked for validity.
func (reg *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return curated.Errorf(InvalidCommand, "empty name")
	}
	if toBlank(cmd.Name) != len(cmd.Name) {
		return curated.Errorf(InvalidCommand, "name contains blanks")
	}
	if strings.ContainsRune(cmd.Name, ':') {
		return curated.Errorf(InvalidCommand, "name contains a colon")
	}
	if cmd.Handler == nil {
		return curated.Errorf(InvalidCommand, "no handler")
	}
	if err := checkFormat(cmd.Format); err != nil {
		return curated.Errorf(InvalidFormat, cmd.Name, err.Error())
	}

	reg.crit.Lock()
	defer reg.crit.Unlock()
	reg.commands = append(reg.commands, &cmd)

	return nil
}

// Find returns the most recently registered command with the specified name.
// Command names are case-sensitive.
func (reg *Registry) Find(name string) (Command, bool) {
	reg.crit.RLock()
	defer reg.crit.RUnlock()

	for i := len(reg.commands) - 1; i >= 0; i-- {
		if reg.commands[i].Name == name {
			return *reg.commands[i], true
		}
	}

	return Command{}, false
}

// Commands returns a sorted list of command names. Each name appears once even if
// more than one command has been registered with that name.
func (reg *Registry) Commands() []string {
	reg.crit.RLock()
	defer reg.crit.RUnlock()

	seen := make(map[string]bool)
	names := make([]string, 0, len(reg.commands))
	for _, cmd := range reg.commands {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	sort.Strings(names)

	return names
}

// Len returns the number of registrations, including shadowed commands.
func (reg *Registry) Len() int {
	reg.crit.RLock()
	defer reg.crit.RUnlock()
	return len(reg.commands)
}
