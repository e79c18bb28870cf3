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

// Package remote allows the console to be driven over a websocket connection.
//
// Clients connect to the /console endpoint. Each text message sent by a client
// is treated as a single command line and is passed to the function given to
// NewServer(). Output from the console is sent to every client with the
// Broadcast() function.
//
// If a password has been configured then the first message from the client
// must be that password. Until then the client can neither send commands nor
// receive broadcasts.
//
// Each client is rate limited. Lines that arrive faster than the limit are
// dropped and the client is sent a notice.
package remote
