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

// Messages sent to remote clients. These are sent as they are and are not
// curated errors.
const (
	MsgPasswordRequired  = "password required"
	MsgPasswordIncorrect = "incorrect password"
	MsgAuthenticated     = "authenticated"
	MsgRateLimited       = "rate limit exceeded: line dropped"
)

// Welcome is the first message sent to a client after the connection is
// made. The placeholder is the client ID.
const Welcome = "connected to console as %s"
