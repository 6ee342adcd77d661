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

package renderloop_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glfan/glfan/graphics"
	"github.com/glfan/glfan/graphics/glmock"
	"github.com/glfan/glfan/platform"
	"github.com/glfan/glfan/renderloop"
	"github.com/glfan/glfan/scene"
	"github.com/glfan/glfan/test"
)

// window delivers a scripted list of event batches, one batch per call to
// PollEvents(). once the script is exhausted no more events are delivered
type window struct {
	script    [][]platform.Event
	polls     int
	swaps     int
	destroyed bool
}

func (w *window) PollEvents() []platform.Event {
	w.polls++
	if len(w.script) == 0 {
		return nil
	}
	ev := w.script[0]
	w.script = w.script[1:]
	return ev
}

func (w *window) SwapBuffers() {
	w.swaps++
}

func (w *window) FramebufferSize() (int32, int32) {
	return 800, 600
}

func (w *window) Destroy() error {
	w.destroyed = true
	return nil
}

const vertSource = "#version 330 core\nvoid main() {}\n"
const fragSource = "#version 330 core\nvoid main() {}\n"

func newDefaultLoop(gl *glmock.GL, win platform.Window) (*renderloop.Loop, *graphics.ShaderProgram, *graphics.MeshBuffer) {
	s := scene.Default()
	program := graphics.NewShaderProgram(gl, vertSource, fragSource)
	mesh := graphics.NewMeshBuffer(gl, s.Vertices, s.Indices, s.Layout())
	return renderloop.NewLoop(gl, win, program, mesh), program, mesh
}

func TestSingleFrame(t *testing.T) {
	gl := glmock.New()
	win := &window{}
	l, program, mesh := newDefaultLoop(gl, win)
	gl.Reset()

	l.Frame()
	test.ExpectEquality(t, l.State(), renderloop.Running)

	test.DemandEquality(t, len(gl.Draws), 1)
	d := gl.Draws[0]
	test.ExpectEquality(t, d.Mode, uint32(graphics.TRIANGLES))
	test.ExpectEquality(t, d.Count, int32(9))
	test.ExpectEquality(t, d.Type, uint32(graphics.UNSIGNED_INT))
	test.ExpectEquality(t, d.Offset, uintptr(0))
	test.ExpectEquality(t, d.Program, program.Handle())
	test.ExpectEquality(t, d.VertexArray, mesh.VAO())

	test.ExpectEquality(t, gl.CountWith("Clear", uint32(graphics.COLOR_BUFFER_BIT)), 1)
	test.ExpectEquality(t, win.polls, 1)
	test.ExpectEquality(t, win.swaps, 1)

	// the draw happens after the clear and before nothing else
	var order []string
	for _, c := range gl.Calls {
		order = append(order, c.Name)
	}
	test.DemandEquality(t, len(order), 4)
	test.ExpectEquality(t, order[0], "Clear")
	test.ExpectEquality(t, order[1], "UseProgram")
	test.ExpectEquality(t, order[2], "BindVertexArray")
	test.ExpectEquality(t, order[3], "DrawElementsWithOffset")

	test.ExpectEquality(t, len(gl.Errors), 0)
}

func TestEscape(t *testing.T) {
	gl := glmock.New()
	win := &window{
		script: [][]platform.Event{
			nil,
			{platform.EventKey{Key: platform.KeyEscape, Action: platform.ActionPress}},
		},
	}
	l, _, _ := newDefaultLoop(gl, win)

	l.Frame()
	test.ExpectEquality(t, l.State(), renderloop.Running)
	test.ExpectEquality(t, len(gl.Draws), 1)

	// escape is seen in the second frame. nothing is drawn in that frame
	l.Frame()
	test.ExpectEquality(t, l.State(), renderloop.Closing)
	test.ExpectEquality(t, len(gl.Draws), 1)
	test.ExpectEquality(t, win.swaps, 1)

	// and nothing is drawn or polled afterwards
	l.Frame()
	test.ExpectEquality(t, len(gl.Draws), 1)
	test.ExpectEquality(t, win.polls, 2)
}

func TestOtherKeys(t *testing.T) {
	gl := glmock.New()
	win := &window{
		script: [][]platform.Event{
			{
				platform.EventKey{Key: platform.KeyUnknown, Action: platform.ActionPress},
				platform.EventKey{Key: platform.KeyEscape, Action: platform.ActionRelease},
				platform.EventKey{Key: platform.KeyEscape, Action: platform.ActionRepeat},
			},
		},
	}
	l, _, _ := newDefaultLoop(gl, win)

	l.Frame()
	test.ExpectEquality(t, l.State(), renderloop.Running)
	test.ExpectEquality(t, len(gl.Draws), 1)
}

func TestQuit(t *testing.T) {
	gl := glmock.New()
	win := &window{
		script: [][]platform.Event{
			nil,
			nil,
			{platform.EventQuit{}},
		},
	}
	l, _, _ := newDefaultLoop(gl, win)

	l.Run()
	test.ExpectEquality(t, l.State(), renderloop.Closing)
	test.ExpectEquality(t, len(gl.Draws), 2)
	test.ExpectEquality(t, win.swaps, 2)
	test.ExpectEquality(t, win.polls, 3)

	// the clear color is set once, at the start of the run
	test.ExpectEquality(t, gl.Count("ClearColor"), 1)
	test.ExpectEquality(t, gl.CurrentClearColor, [4]float32{0, 0, 0, 0})
}

func TestResize(t *testing.T) {
	gl := glmock.New()
	win := &window{
		script: [][]platform.Event{
			{platform.EventFramebufferResize{Width: 1024, Height: 768}},
			nil,
		},
	}
	l, _, _ := newDefaultLoop(gl, win)
	gl.Reset()

	l.Frame()
	test.ExpectEquality(t, gl.Count("Viewport"), 1)
	test.ExpectEquality(t, gl.CurrentViewport, [4]int32{0, 0, 1024, 768})

	// no further viewport changes without a resize event
	l.Frame()
	test.ExpectEquality(t, gl.Count("Viewport"), 1)
	test.ExpectEquality(t, len(gl.Draws), 2)
}

func TestClearColor(t *testing.T) {
	gl := glmock.New()
	win := &window{script: [][]platform.Event{{platform.EventQuit{}}}}
	l, _, _ := newDefaultLoop(gl, win)

	l.SetClearColor([4]float32{0.2, 0.3, 0.3, 1.0})
	l.Run()
	test.ExpectEquality(t, gl.CurrentClearColor, [4]float32{0.2, 0.3, 0.3, 1.0})
	test.ExpectEquality(t, len(gl.Draws), 0)
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "default.vert")
	frag := filepath.Join(dir, "default.frag")
	test.DemandSuccess(t, os.WriteFile(vert, []byte(vertSource), 0600))
	test.DemandSuccess(t, os.WriteFile(frag, []byte(fragSource), 0600))

	gl := glmock.New()
	win := &window{}

	s := scene.Default()
	program, err := graphics.LoadShaderProgram(gl, vert, frag)
	test.DemandSuccess(t, err)
	mesh := graphics.NewMeshBuffer(gl, s.Vertices, s.Indices, s.Layout())

	reload := make(chan struct{}, 1)
	l := renderloop.NewLoop(gl, win, program, mesh)
	l.SetReload(reload)

	first := program.Handle()
	l.Frame()
	test.ExpectEquality(t, gl.Draws[0].Program, first)

	reload <- struct{}{}
	l.Frame()
	test.ExpectInequality(t, program.Handle(), first)
	test.ExpectEquality(t, gl.Draws[1].Program, program.Handle())
	test.ExpectSuccess(t, gl.Program(first).Deleted)

	// a failed reload keeps the program and the loop keeps drawing
	second := program.Handle()
	test.DemandSuccess(t, os.Remove(frag))
	reload <- struct{}{}
	l.Frame()
	test.ExpectEquality(t, program.Handle(), second)
	test.ExpectEquality(t, len(gl.Draws), 3)
	test.ExpectEquality(t, gl.Draws[2].Program, second)

	test.ExpectEquality(t, len(gl.Errors), 0)
}

func TestResourcesReleasedOnce(t *testing.T) {
	gl := glmock.New()
	win := &window{script: [][]platform.Event{nil, {platform.EventQuit{}}}}

	func() {
		l, program, mesh := newDefaultLoop(gl, win)
		defer program.Destroy()
		defer mesh.Destroy()
		l.Run()
	}()

	shaders, programs, vertexArrays, buffers := gl.Live()
	test.ExpectEquality(t, shaders, 0)
	test.ExpectEquality(t, programs, 0)
	test.ExpectEquality(t, vertexArrays, 0)
	test.ExpectEquality(t, buffers, 0)
	test.ExpectEquality(t, gl.Count("DeleteProgram"), 1)
	test.ExpectEquality(t, gl.Count("DeleteBuffers"), 2)
	test.ExpectEquality(t, gl.Count("DeleteVertexArrays"), 1)
	test.ExpectEquality(t, len(gl.Errors), 0)
}

func TestWrongGoroutine(t *testing.T) {
	gl := glmock.New()
	l, _, _ := newDefaultLoop(gl, &window{})

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		l.Frame()
	}()
	test.ExpectSuccess(t, <-panicked)
}

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, renderloop.Running.String(), "running")
	test.ExpectEquality(t, renderloop.Closing.String(), "closing")
}
