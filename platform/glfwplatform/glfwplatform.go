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

// Package glfwplatform implements platform.Window with GLFW.
package glfwplatform

import (
	"runtime"

	"github.com/glfan/glfan/curated"
	"github.com/glfan/glfan/logger"
	"github.com/glfan/glfan/platform"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	win *glfw.Window

	// events queued by the GLFW callbacks during glfw.PollEvents()
	events []platform.Event
}

// NewWindow initialises GLFW and creates a window according to the
// configuration. The window's OpenGL context is made current.
//
// Must be called from the main thread.
func NewWindow(cfg platform.Config) (*Window, error) {
	// glfw requires that all calls are made from the main thread
	runtime.LockOSThread()

	err := glfw.Init()
	if err != nil {
		return nil, curated.Errorf("glfw: %v", err)
	}
	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	w := &Window{}

	w.win, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf("glfw: %v", err)
	}
	w.win.MakeContextCurrent()
	logger.Logf(logger.Allow, "glfw", "using GL version %d.%d core", cfg.GLMajor, cfg.GLMinor)

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.events = append(w.events, platform.EventKey{
			Key:    translateKey(key),
			Action: translateAction(action),
		})
	})

	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		w.events = append(w.events, platform.EventFramebufferResize{
			Width:  int32(width),
			Height: int32(height),
		})
	})

	return w, nil
}

func translateKey(key glfw.Key) platform.Key {
	switch key {
	case glfw.KeyEscape:
		return platform.KeyEscape
	}
	return platform.KeyUnknown
}

func translateAction(action glfw.Action) platform.Action {
	switch action {
	case glfw.Release:
		return platform.ActionRelease
	case glfw.Repeat:
		return platform.ActionRepeat
	}
	return platform.ActionPress
}

// PollEvents implements the platform.Window interface.
func (w *Window) PollEvents() []platform.Event {
	glfw.PollEvents()

	if w.win.ShouldClose() {
		w.events = append(w.events, platform.EventQuit{})
	}

	ev := w.events
	w.events = nil
	return ev
}

// SwapBuffers implements the platform.Window interface.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// FramebufferSize implements the platform.Window interface.
func (w *Window) FramebufferSize() (int32, int32) {
	width, height := w.win.GetFramebufferSize()
	return int32(width), int32(height)
}

// Destroy implements the platform.Window interface.
func (w *Window) Destroy() error {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
	return nil
}
