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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherconsole/prefs"
	"github.com/jetsetilly/gopherconsole/test"
)

// prefsFile returns the path to a prefs file in a temporary directory that
// is removed when the test completes.
func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = prefs.WarningBoilerPlate + "\n" + expected
	if expected != string(data) {
		t.Errorf("prefs file does not match expected contents")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("name", &v))
	test.ExpectSuccess(t, v.Set("nameless tee"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "name :: nameless tee\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not bring back the cropped information
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestInt(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestIntRange(t *testing.T) {
	var v prefs.Int

	test.ExpectSuccess(t, v.Set(1000))
	v.SetRange(1, 100)
	test.ExpectEquality(t, v.Get().(int), 100)

	test.ExpectSuccess(t, v.Set(-5))
	test.ExpectEquality(t, v.Get().(int), 1)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 1)

	// a maximum of zero means there is no upper limit
	v.SetRange(10, 0)
	test.ExpectSuccess(t, v.Set(1000000))
	test.ExpectEquality(t, v.Get().(int), 1000000)
	test.ExpectSuccess(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 10)

	// no range at all
	v.SetRange(0, 0)
	test.ExpectSuccess(t, v.Set(-1000))
	test.ExpectEquality(t, v.Get().(int), -1000)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return os.ErrInvalid
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// the pre hook prevents the value from changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestLoad(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Add("name", &s))

	// missing file is created when saveOnFail is true
	test.ExpectSuccess(t, n.Set(3))
	test.DemandSuccess(t, dsk.Load(true))
	cmpPrefsFile(t, fn, "name :: \nnumber :: 3\n")

	test.ExpectSuccess(t, n.Set(7))
	test.ExpectSuccess(t, s.Set("player"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, n.Get().(int), 0)
	test.ExpectEquality(t, s.String(), "")

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, n.Get().(int), 7)
	test.ExpectEquality(t, s.String(), "player")

	// values on the command line stack take precedence
	prefs.PushCommandLineStack("number::42")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, n.Get().(int), 42)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

// values from the command line stack are used for the session but are not
// written to the file unless they are set again
func TestCommandLineNotSaved(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n, m prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Add("other", &m))
	test.ExpectSuccess(t, n.Set(5))
	test.ExpectSuccess(t, m.Set(1))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("number::9; other::8")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, n.Get().(int), 9)
	test.ExpectEquality(t, m.Get().(int), 8)

	// other is set explicitly after loading and so is saved
	test.ExpectSuccess(t, m.Set(2))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 5\nother :: 2\n")

	// the command line value is still in use after saving
	test.ExpectEquality(t, n.Get().(int), 9)

	// the command line value is forgotten once number is set explicitly
	test.ExpectSuccess(t, n.Set(9))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 9\nother :: 2\n")

	// missing file uses the value before the override
	fn = prefsFile(t)
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var d prefs.Int
	test.ExpectSuccess(t, dsk.Add("default", &d))
	test.ExpectSuccess(t, d.Set(3))
	prefs.PushCommandLineStack("default::4")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, d.Get().(int), 4)
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "default :: 3\n")
}

func TestLoad_missing(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Load(false))

	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)
}

// values written by one Disk instance are not clobbered by another
// Disk instance using the same file.
func TestSharedFile(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(prefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectFailure(t, dsk.Add("a\nb", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
