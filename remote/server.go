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
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gopherconsole/config"
	"github.com/jetsetilly/gopherconsole/curated"
	"github.com/jetsetilly/gopherconsole/logger"
	"golang.org/x/time/rate"
)

// Endpoint is the path at which the server accepts websocket connections.
const Endpoint = "/console"

// the number of messages that can be queued for a client before messages
// start being dropped
const sendQueueLen = 64

// the amount of time allowed for a single write to a client
const writeTimeout = 5 * time.Second

// PostFunc is called with every line received from an authenticated client.
// The id is the client's unique ID.
//
// PostFunc is called from the client's goroutine and should not execute the
// line directly. It should pass the line to whatever goroutine owns the
// console.
type PostFunc func(id string, line string)

// Server accepts connections from remote console clients.
type Server struct {
	post     PostFunc
	password string
	limit    rate.Limit
	burst    int

	upgrader websocket.Upgrader

	crit    sync.Mutex
	clients map[uuid.UUID]*client

	httpServer *http.Server
	done       chan error
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(cfg config.Remote, post PostFunc) *Server {
	srv := &Server{
		post:     post,
		password: cfg.Password,
		limit:    rate.Limit(cfg.Rate),
		burst:    cfg.Burst,
		clients:  make(map[uuid.UUID]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	if cfg.Rate <= 0 {
		srv.limit = rate.Inf
	}
	if srv.burst <= 0 {
		srv.burst = 1
	}

	return srv
}

// Handler returns an http.Handler that serves the console endpoint.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Endpoint, srv)
	return mux
}

// Start listening on the address. The server runs in its own goroutine. The
// address that is actually being listened on is returned, which is useful if
// the port in the requested address was zero.
func (srv *Server) Start(addr string) (string, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return "", curated.Errorf("remote: %v", err)
	}

	srv.httpServer = &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.done = make(chan error, 1)

	go func() {
		err := srv.httpServer.Serve(l)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		srv.done <- err
	}()

	logger.Logf(logger.Allow, "remote", "listening on %s", l.Addr().String())

	return l.Addr().String(), nil
}

// Close stops the server and disconnects every client.
func (srv *Server) Close() error {
	srv.crit.Lock()
	for _, c := range srv.clients {
		c.close()
	}
	srv.crit.Unlock()

	if srv.httpServer == nil {
		return nil
	}

	err := srv.httpServer.Close()
	if err == nil {
		err = <-srv.done
	}
	srv.httpServer = nil

	if err != nil {
		return curated.Errorf("remote: %v", err)
	}
	return nil
}

// Clients returns the number of connected clients, authenticated or not.
func (srv *Server) Clients() int {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	return len(srv.clients)
}

// Broadcast sends the text to every authenticated client.
func (srv *Server) Broadcast(s string) {
	srv.crit.Lock()
	defer srv.crit.Unlock()

	for _, c := range srv.clients {
		if c.isAuthenticated() {
			c.send(s)
		}
	}
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "upgrade failed: %v", err)
		return
	}

	c := newClient(conn, rate.NewLimiter(srv.limit, srv.burst))
	c.authenticated = srv.password == ""

	srv.crit.Lock()
	srv.clients[c.id] = c
	srv.crit.Unlock()

	logger.Logf(logger.Allow, "remote", "%s connected from %s", c.id, conn.RemoteAddr())

	c.send(fmt.Sprintf(Welcome, c.id))
	if !c.isAuthenticated() {
		c.send(MsgPasswordRequired)
	}

	srv.serveClient(c)

	srv.crit.Lock()
	delete(srv.clients, c.id)
	srv.crit.Unlock()

	c.close()

	logger.Logf(logger.Allow, "remote", "%s disconnected", c.id)
}

func (srv *Server) serveClient(c *client) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Logf(logger.Allow, "remote", "%s: %v", c.id, err)
			}
			return
		}

		msg := strings.TrimRight(string(data), "\r\n")

		if !c.isAuthenticated() {
			if subtle.ConstantTimeCompare([]byte(msg), []byte(srv.password)) != 1 {
				logger.Logf(logger.Allow, "remote", "%s: incorrect password", c.id)
				c.send(MsgPasswordIncorrect)
				return
			}
			c.setAuthenticated()
			c.send(MsgAuthenticated)
			continue
		}

		if !c.limiter.Allow() {
			logger.Logf(logger.Allow, "remote", "%s: rate limited", c.id)
			c.send(MsgRateLimited)
			continue
		}

		srv.post(c.id.String(), msg)
	}
}
