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

package remote

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// client is a single connection to the server. Messages to the client are
// queued and written by the client's own goroutine.
type client struct {
	id      uuid.UUID
	conn    *websocket.Conn
	limiter *rate.Limiter

	crit          sync.Mutex
	authenticated bool
	closed        bool
	queue         chan string

	// the writer goroutine has finished
	finished chan bool
}

func newClient(conn *websocket.Conn, limiter *rate.Limiter) *client {
	c := &client{
		id:       uuid.New(),
		conn:     conn,
		limiter:  limiter,
		queue:    make(chan string, sendQueueLen),
		finished: make(chan bool),
	}
	go c.writer()
	return c
}

func (c *client) isAuthenticated() bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.authenticated
}

func (c *client) setAuthenticated() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.authenticated = true
}

// send queues the message. The message is dropped if the queue is full.
func (c *client) send(s string) {
	c.crit.Lock()
	defer c.crit.Unlock()

	if c.closed {
		return
	}

	select {
	case c.queue <- s:
	default:
	}
}

// close stops the writer goroutine once the queue has been drained and then
// closes the connection. Safe to call more than once.
func (c *client) close() {
	c.crit.Lock()
	if c.closed {
		c.crit.Unlock()
		return
	}
	c.closed = true
	close(c.queue)
	c.crit.Unlock()

	<-c.finished
	c.conn.Close()
}

func (c *client) writer() {
	defer close(c.finished)

	for s := range c.queue {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, []byte(s)); err != nil {
			// keep draining the queue so that close() does not block
			continue
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
