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

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jetsetilly/gopherconsole/curated"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "config: unsupported file format: %s"
	InvalidConfig     = "config: %s: %s"
)

// Format of the configuration file.
type Format int

// List of valid Format values.
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatFromFilename returns the format implied by the extension of the
// filename.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatTOML, curated.Errorf(UnsupportedFormat, filename)
}

// List of terminal types.
const (
	TerminalPlain = "plain"
	TerminalColor = "color"
	TerminalLiner = "liner"
)

// IntVar declares an integer console variable. A Max value of zero means
// that there is no upper limit.
type IntVar struct {
	Name    string `toml:"name" yaml:"name"`
	Default int    `toml:"default" yaml:"default"`
	Min     int    `toml:"min" yaml:"min"`
	Max     int    `toml:"max" yaml:"max"`
	Help    string `toml:"help" yaml:"help"`
}

// StrVar declares a string console variable. A MaxLen value of zero means
// that there is no maximum length.
type StrVar struct {
	Name    string `toml:"name" yaml:"name"`
	Default string `toml:"default" yaml:"default"`
	MaxLen  int    `toml:"maxlen" yaml:"maxlen"`
	Help    string `toml:"help" yaml:"help"`
}

// Remote configures the remote console. The remote console is disabled if
// Addr is empty.
type Remote struct {
	Addr     string `toml:"addr" yaml:"addr"`
	Password string `toml:"password" yaml:"password"`

	// Rate is the number of lines per second a client can send. Burst is the
	// number of lines that can be sent at once
	Rate  float64 `toml:"rate" yaml:"rate"`
	Burst int     `toml:"burst" yaml:"burst"`
}

// Config is the application configuration.
type Config struct {
	Terminal string            `toml:"terminal" yaml:"terminal"`
	Prefs    string            `toml:"prefs" yaml:"prefs"`
	Autoexec []string          `toml:"autoexec" yaml:"autoexec"`
	Watch    bool              `toml:"watch" yaml:"watch"`
	Ints     []IntVar          `toml:"int" yaml:"int"`
	Strs     []StrVar          `toml:"string" yaml:"string"`
	Binds    map[string]string `toml:"binds" yaml:"binds"`
	Remote   Remote            `toml:"remote" yaml:"remote"`
}

// Default returns the configuration used when there is no configuration
// file.
func Default() Config {
	return Config{
		Terminal: TerminalColor,
		Binds:    make(map[string]string),
		Remote: Remote{
			Rate:  10,
			Burst: 20,
		},
	}
}

// Load the named configuration file. Values not in the file are taken from
// Default().
func Load(filename string) (Config, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, curated.Errorf("config: %v", err)
	}

	return Parse(data, f)
}

// Parse configuration data of the specified format.
func Parse(data []byte, f Format) (Config, error) {
	cfg := Default()

	switch f {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, curated.Errorf("config: %v", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, curated.Errorf("config: %v", err)
		}
	default:
		return Config{}, curated.Errorf(UnsupportedFormat, f)
	}

	if cfg.Binds == nil {
		cfg.Binds = make(map[string]string)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n:")
}

// Validate checks the configuration for errors that would prevent it from
// being used.
func (cfg Config) Validate() error {
	switch cfg.Terminal {
	case TerminalPlain, TerminalColor, TerminalLiner:
	default:
		return curated.Errorf(InvalidConfig, "terminal", cfg.Terminal)
	}

	seen := make(map[string]bool)

	for _, v := range cfg.Ints {
		if !validName(v.Name) {
			return curated.Errorf(InvalidConfig, "int", "illegal name")
		}
		if seen[v.Name] {
			return curated.Errorf(InvalidConfig, v.Name, "declared more than once")
		}
		seen[v.Name] = true
		if v.Max != 0 && v.Min > v.Max {
			return curated.Errorf(InvalidConfig, v.Name, "min is greater than max")
		}
	}

	for _, v := range cfg.Strs {
		if !validName(v.Name) {
			return curated.Errorf(InvalidConfig, "string", "illegal name")
		}
		if seen[v.Name] {
			return curated.Errorf(InvalidConfig, v.Name, "declared more than once")
		}
		seen[v.Name] = true
		if v.MaxLen < 0 {
			return curated.Errorf(InvalidConfig, v.Name, "negative maxlen")
		}
	}

	if cfg.Remote.Rate < 0 || cfg.Remote.Burst < 0 {
		return curated.Errorf(InvalidConfig, "remote", "negative rate limit")
	}

	return nil
}
