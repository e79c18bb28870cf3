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
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
)

// Debounce is the period that must pass without any change to a watched file
// before the change callback is called. Editors often write a file in several
// steps.
const Debounce = 100 * time.Millisecond

// Watcher calls a function whenever a file is changed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filename string
	onChange func(filename string)

	crit  sync.Mutex
	timer *time.Timer

	done chan struct{}
}

// NewWatcher starts watching the named file. The onChange function is called,
// from the Watcher's own goroutine, after the file has been written to or
// replaced.
//
// The directory containing the file is watched rather than the file itself
// so that the watch survives editors that save by renaming a new file over
// the old one.
func NewWatcher(filename string, onChange func(filename string)) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, curated.Errorf("script: watch: %v", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("script: watch: %v", err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, curated.Errorf("script: watch: %v", err)
	}

	wtc := &Watcher{
		watcher:  w,
		filename: abs,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go wtc.loop()

	logger.Logf(logger.Allow, "script", "watching '%s'", filename)

	return wtc, nil
}

func (wtc *Watcher) loop() {
	defer close(wtc.done)

	for {
		select {
		case ev, ok := <-wtc.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != wtc.filename {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				wtc.trigger()
			}

		case err, ok := <-wtc.watcher.Errors:
			if !ok {
				return
			}
			logger.Logf(logger.Allow, "script", "watch: %v", err)
		}
	}
}

// trigger the change callback once the debounce period has passed.
func (wtc *Watcher) trigger() {
	wtc.crit.Lock()
	defer wtc.crit.Unlock()

	if wtc.timer != nil {
		wtc.timer.Stop()
	}
	wtc.timer = time.AfterFunc(Debounce, func() {
		wtc.onChange(wtc.filename)
	})
}

// Close stops watching the file. A pending change callback is cancelled.
func (wtc *Watcher) Close() error {
	wtc.crit.Lock()
	if wtc.timer != nil {
		wtc.timer.Stop()
	}
	wtc.crit.Unlock()

	err := wtc.watcher.Close()
	<-wtc.done

	if err != nil {
		return curated.Errorf("script: watch: %v", err)
	}
	return nil
}
