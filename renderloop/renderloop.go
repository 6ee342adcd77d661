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

// Package renderloop runs the per-frame loop: poll events, clear the
// framebuffer, draw the mesh with the shader program and present the frame.
//
// The loop has two states. It starts in the Running state and moves to the
// Closing state when the window is closed or the Escape key is pressed. Once
// Closing, nothing more is drawn.
package renderloop

import (
	"github.com/glfan/glfan/assert"
	"github.com/glfan/glfan/graphics"
	"github.com/glfan/glfan/logger"
	"github.com/glfan/glfan/platform"
)

// State of the loop.
type State int

// List of valid State values.
const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Loop draws a single mesh with a single shader program every frame. The Loop
// does not own the window, program or mesh and does not destroy them.
type Loop struct {
	api     graphics.API
	win     platform.Window
	program *graphics.ShaderProgram
	mesh    *graphics.MeshBuffer

	state State

	// color the framebuffer is cleared to. set once at the start of Run()
	clearColor [4]float32

	// signals that the shader program should be reloaded. nil if reloading
	// is not required
	reload <-chan struct{}

	// the goroutine that created the loop. the OpenGL context belongs to the
	// thread of that goroutine
	owner assert.Owner
}

// NewLoop is the preferred method of initialisation for the Loop type. It must
// be called from the goroutine that owns the OpenGL context of the window.
func NewLoop(api graphics.API, win platform.Window, program *graphics.ShaderProgram, mesh *graphics.MeshBuffer) *Loop {
	return &Loop{
		api:     api,
		win:     win,
		program: program,
		mesh:    mesh,
		state:   Running,
		owner:   assert.NewOwner(),
	}
}

// SetClearColor sets the color the framebuffer is cleared to.
func (l *Loop) SetClearColor(c [4]float32) {
	l.clearColor = c
}

// SetReload sets the channel that signals that the shader program should be
// reloaded from its source files.
func (l *Loop) SetReload(reload <-chan struct{}) {
	l.reload = reload
}

// State returns the current state of the loop.
func (l *Loop) State() State {
	return l.state
}

// Run calls Frame() until the loop is Closing.
func (l *Loop) Run() {
	l.owner.Check("renderloop")
	l.api.ClearColor(l.clearColor[0], l.clearColor[1], l.clearColor[2], l.clearColor[3])

	logger.Log(logger.Allow, "renderloop", l.state)
	for l.state == Running {
		l.Frame()
	}
	logger.Log(logger.Allow, "renderloop", l.state)
}

// Frame performs a single iteration of the loop. It does nothing if the loop
// is Closing.
func (l *Loop) Frame() {
	l.owner.Check("renderloop")

	if l.state != Running {
		return
	}

	l.serviceReload()

	for _, ev := range l.win.PollEvents() {
		l.serviceEvent(ev)
	}

	if l.state != Running {
		return
	}

	l.api.Clear(graphics.COLOR_BUFFER_BIT)
	l.program.Activate()
	l.api.BindVertexArray(l.mesh.VAO())
	l.api.DrawElementsWithOffset(graphics.TRIANGLES, l.mesh.Count(), graphics.UNSIGNED_INT, 0)

	l.win.SwapBuffers()
}

func (l *Loop) serviceReload() {
	if l.reload == nil {
		return
	}

	select {
	case <-l.reload:
		err := l.program.Reload()
		if err != nil {
			logger.Log(logger.Allow, "renderloop", err)
			return
		}
		logger.Log(logger.Allow, "renderloop", "shader program reloaded")
	default:
	}
}

func (l *Loop) serviceEvent(ev platform.Event) {
	switch ev := ev.(type) {
	case platform.EventQuit:
		l.state = Closing

	case platform.EventKey:
		if ev.Key == platform.KeyEscape && ev.Action == platform.ActionPress {
			l.state = Closing
		}

	case platform.EventFramebufferResize:
		l.api.Viewport(0, 0, ev.Width, ev.Height)
	}
}
