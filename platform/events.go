// This file is part of glfan.
//
// glfan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glfan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glfan.  If not, see <https://www.gnu.org/licenses/>.

package platform

import "fmt"

// Event is implemented by all event types.
type Event interface {
	isEvent()
}

// Key identifies a keyboard key. Only the keys the program reacts to are
// listed.
type Key int

// List of valid Key values.
const (
	KeyUnknown Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	}
	return "Unknown"
}

// Action is the state change of a key.
type Action int

// List of valid Action values.
const (
	ActionPress Action = iota
	ActionRelease
	ActionRepeat
)

func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionRepeat:
		return "repeat"
	}
	return "unknown"
}

// EventQuit is sent when the user asks for the window to be closed.
type EventQuit struct{}

// EventKey is sent when a key is pressed, released or auto-repeated.
type EventKey struct {
	Key    Key
	Action Action
}

// EventFramebufferResize is sent when the size of the framebuffer has
// changed. The size is in pixels.
type EventFramebufferResize struct {
	Width  int32
	Height int32
}

func (EventQuit) isEvent()              {}
func (EventKey) isEvent()               {}
func (EventFramebufferResize) isEvent() {}

func (EventQuit) String() string {
	return "quit"
}

func (ev EventKey) String() string {
	return fmt.Sprintf("key %s %s", ev.Key, ev.Action)
}

func (ev EventFramebufferResize) String() string {
	return fmt.Sprintf("framebuffer resize %dx%d", ev.Width, ev.Height)
}
