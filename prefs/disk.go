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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
)

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in a prefs file.
const keySep = " :: "

// Disk is used to load and save preference values to a file on disk. Values
// are stored one per line in the form "key :: value".
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line stack by Load(). they are never
	// saved unless the value has been set again since loading
	overrides map[string]override
}

// override records the value that would have been used had the command line
// not provided one.
type override struct {
	saved string
	gen   uint64
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: no path for disk")
	}

	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]override),
	}, nil
}

// Path returns the path of the file used by the Disk.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to the disk using the key. Keys cannot contain the
// key separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) || strings.ContainsAny(key, "\n\r") {
		return curated.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns a sorted list of the keys that have been added to the disk.
func (dsk *Disk) Keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all values added to the disk to their default value.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the prefs file into a map of raw values. A missing file is returned
// as an error satisfying errors.Is(err, fs.ErrNotExist).
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}

		kv := strings.SplitN(line, keySep, 2)
		if len(kv) != 2 {
			continue
		}
		raw[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return raw, scanner.Err()
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved.
//
// A value that came from the command line stack is saved as the value it
// replaced, unless it has been set again since.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		raw = make(map[string]string)
	}

	for k, v := range dsk.entries {
		if o, ok := dsk.overrides[k]; ok {
			if v.generation() == o.gen {
				raw[k] = o.saved
				continue
			}
			delete(dsk.overrides, k)
		}
		raw[k] = v.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, raw[k])
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return curated.Errorf("prefs: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Keys in the file that have not been added
// to the Disk are ignored.
//
// If the file does not exist and saveOnFail is true, the current values are
// saved to create the file. Otherwise a missing file is not an error.
//
// Values on the top of the command line stack take precedence over the values
// in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	raw, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		raw = make(map[string]string)
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	}

	for k, p := range dsk.entries {
		delete(dsk.overrides, k)

		if v, ok := raw[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}

		if ok, v := GetCommandLinePref(k); ok {
			saved := p.String()
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
			dsk.overrides[k] = override{saved: saved, gen: p.generation()}
		}
	}

	return nil
}
