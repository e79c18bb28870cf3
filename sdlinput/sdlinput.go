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

// Package sdlinput opens an SDL window and turns the keyboard events it
// receives into key presses and releases for the console's key bindings.
//
// SDL requires that events are serviced on the main thread. The
// application's main() function should lock the OS thread during init() and
// call Window.Service() from the main goroutine.
package sdlinput

import (
	"context"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherconsole/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyPoster receives key events from the window. The session.Session type
// satisfies this interface.
type KeyPoster interface {
	PostKey(key string, down bool) bool
}

// the number of milliseconds to wait for an event before checking the
// context
const waitTimeout = 50

// Window is an SDL window that receives keyboard input.
type Window struct {
	window *sdl.Window
	keys   KeyPoster
}

// NewWindow is the preferred method of initialisation for the Window type.
// Must be called from the main thread.
func NewWindow(title string, keys KeyPoster) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlinput: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		320, 200, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlinput: %w", err)
	}

	return &Window{
		window: window,
		keys:   keys,
	}, nil
}

// Destroy the window and shut down SDL.
func (wnd *Window) Destroy() {
	if wnd.window != nil {
		_ = wnd.window.Destroy()
		wnd.window = nil
	}
	sdl.Quit()
}

// Service events until the window is closed or the context is cancelled.
// Returns true if the window was closed.
//
// Must be called from the main thread.
func (wnd *Window) Service(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		// all pending events are serviced in one go. servicing one event per
		// wait would cause key events to queue up
		for ev := sdl.WaitEventTimeout(waitTimeout); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return true
			}

			key, down, ok := translate(ev)
			if !ok {
				continue
			}

			if !wnd.keys.PostKey(key, down) {
				logger.Logf(logger.Allow, "sdlinput", "dropped key event: %s", key)
			}
		}
	}
}

// translate keyboard events into a key name and direction. Repeated key
// down events are ignored because bound commands see a single press
// followed by a single release.
func translate(ev sdl.Event) (string, bool, bool) {
	kev, ok := ev.(*sdl.KeyboardEvent)
	if !ok {
		return "", false, false
	}

	if kev.Repeat != 0 {
		return "", false, false
	}

	var down bool
	switch kev.Type {
	case sdl.KEYDOWN:
		down = true
	case sdl.KEYUP:
		down = false
	default:
		return "", false, false
	}

	// key names such as "Left Shift" must be a single token for the bind
	// command
	key := strings.ToLower(sdl.GetKeyName(kev.Keysym.Sym))
	key = strings.ReplaceAll(key, " ", "_")
	if key == "" {
		return "", false, false
	}

	return key, down, true
}
