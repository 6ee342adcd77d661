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

// Package sdlplatform implements platform.Window with SDL2.
package sdlplatform

import (
	"runtime"

	"github.com/glfan/glfan/curated"
	"github.com/glfan/glfan/logger"
	"github.com/glfan/glfan/platform"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL window with a current OpenGL context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
}

type glAttr struct {
	attr  sdl.GLattr
	value int
}

// NewWindow initialises SDL and creates a window according to the
// configuration. The window's OpenGL context is made current.
//
// Must be called from the main thread.
func NewWindow(cfg platform.Config) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	attrs := []glAttr{
		{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.GLMajor},
		{sdl.GL_CONTEXT_MINOR_VERSION, cfg.GLMinor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	if runtime.GOOS == "darwin" {
		attrs = append(attrs, glAttr{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	w := &Window{}

	w.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	w.glContext, err = w.window.GLCreateContext()
	if err != nil {
		_ = w.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	err = w.window.GLMakeCurrent(w.glContext)
	if err != nil {
		_ = w.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return w, nil
}

// PollEvents implements the platform.Window interface.
func (w *Window) PollEvents() []platform.Event {
	var events []platform.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, platform.EventQuit{})

		case *sdl.KeyboardEvent:
			k := platform.EventKey{Key: platform.KeyUnknown}
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				k.Key = platform.KeyEscape
			}
			switch {
			case ev.Type == sdl.KEYUP:
				k.Action = platform.ActionRelease
			case ev.Repeat != 0:
				k.Action = platform.ActionRepeat
			default:
				k.Action = platform.ActionPress
			}
			events = append(events, k)

		case *sdl.WindowEvent:
			// the size in the event is the window size, which is not
			// necessarily the size of the framebuffer
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.FramebufferSize()
				events = append(events, platform.EventFramebufferResize{
					Width:  width,
					Height: height,
				})
			}
		}
	}

	return events
}

// SwapBuffers implements the platform.Window interface.
func (w *Window) SwapBuffers() {
	w.window.GLSwap()
}

// FramebufferSize implements the platform.Window interface.
func (w *Window) FramebufferSize() (int32, int32) {
	return w.window.GLGetDrawableSize()
}

// Destroy implements the platform.Window interface.
func (w *Window) Destroy() error {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}

	if w.window != nil {
		err := w.window.Destroy()
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
		w.window = nil
	}
	sdl.Quit()

	return nil
}
