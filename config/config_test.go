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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherconsole/config"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/test"
)

const tomlConfig = `
terminal = "liner"
autoexec = ["autoexec.cfg", "binds.cfg"]
watch = true

[[int]]
name = "sensitivity"
default = 5
min = 1
max = 100
help = "mouse sensitivity"

[[string]]
name = "player_name"
default = "nameless tee"
maxlen = 16

[binds]
space = "+jump"
f1 = "echo hello"

[remote]
addr = "localhost:8303"
password = "secret"
`

const yamlConfig = `
terminal: liner
autoexec:
  - autoexec.cfg
  - binds.cfg
watch: true
int:
  - name: sensitivity
    default: 5
    min: 1
    max: 100
    help: mouse sensitivity
string:
  - name: player_name
    default: nameless tee
    maxlen: 16
binds:
  space: "+jump"
  f1: echo hello
remote:
  addr: localhost:8303
  password: secret
`

func checkConfig(t *testing.T, cfg config.Config) {
	t.Helper()

	test.ExpectEquality(t, cfg.Terminal, config.TerminalLiner)
	test.DemandEquality(t, len(cfg.Autoexec), 2)
	test.ExpectEquality(t, cfg.Autoexec[1], "binds.cfg")
	test.ExpectSuccess(t, cfg.Watch)

	test.DemandEquality(t, len(cfg.Ints), 1)
	test.ExpectEquality(t, cfg.Ints[0], config.IntVar{Name: "sensitivity", Default: 5, Min: 1, Max: 100, Help: "mouse sensitivity"})

	test.DemandEquality(t, len(cfg.Strs), 1)
	test.ExpectEquality(t, cfg.Strs[0], config.StrVar{Name: "player_name", Default: "nameless tee", MaxLen: 16})

	test.ExpectEquality(t, len(cfg.Binds), 2)
	test.ExpectEquality(t, cfg.Binds["space"], "+jump")
	test.ExpectEquality(t, cfg.Binds["f1"], "echo hello")

	test.ExpectEquality(t, cfg.Remote.Addr, "localhost:8303")
	test.ExpectEquality(t, cfg.Remote.Password, "secret")

	// values not in the file are the default values
	test.ExpectEquality(t, cfg.Remote.Rate, config.Default().Remote.Rate)
	test.ExpectEquality(t, cfg.Remote.Burst, config.Default().Remote.Burst)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(tomlConfig), config.FormatTOML)
	test.DemandSuccess(t, err)
	checkConfig(t, cfg)

	cfg, err = config.Parse([]byte(yamlConfig), config.FormatYAML)
	test.DemandSuccess(t, err)
	checkConfig(t, cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	for _, f := range []struct {
		name string
		data string
	}{
		{"config.toml", tomlConfig},
		{"config.yaml", yamlConfig},
		{"config.YML", yamlConfig},
	} {
		fn := filepath.Join(dir, f.name)
		test.DemandSuccess(t, os.WriteFile(fn, []byte(f.data), 0o600))
		cfg, err := config.Load(fn)
		test.DemandSuccess(t, err, f.name)
		checkConfig(t, cfg)
	}

	_, err := config.Load(filepath.Join(dir, "config.ini"))
	test.ExpectSuccess(t, curated.Is(err, config.UnsupportedFormat))

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	test.ExpectFailure(t, err)
}

func TestDefault(t *testing.T) {
	cfg, err := config.Parse([]byte(""), config.FormatTOML)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Terminal, config.TerminalColor)
	test.ExpectEquality(t, cfg.Remote.Addr, "")
	test.ExpectSuccess(t, cfg.Binds != nil)
	test.ExpectSuccess(t, config.Default().Validate())
}

func TestValidate(t *testing.T) {
	var err error

	_, err = config.Parse([]byte(`terminal = "teletype"`), config.FormatTOML)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))

	_, err = config.Parse([]byte("[[int]]\nname = \"two words\""), config.FormatTOML)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))

	_, err = config.Parse([]byte("[[string]]\nname = \"i:\""), config.FormatTOML)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))

	_, err = config.Parse([]byte("[[int]]\nname = \"a\"\nmin = 10\nmax = 5"), config.FormatTOML)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))

	// max of zero is no upper limit
	_, err = config.Parse([]byte("[[int]]\nname = \"a\"\nmin = 10\nmax = 0"), config.FormatTOML)
	test.ExpectSuccess(t, err)

	_, err = config.Parse([]byte("[[int]]\nname = \"a\"\n[[string]]\nname = \"a\""), config.FormatTOML)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))

	_, err = config.Parse([]byte("terminal: [1, 2"), config.FormatYAML)
	test.ExpectFailure(t, err)
}
