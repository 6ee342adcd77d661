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

// Package platform defines what the program needs from a windowing library: a
// window with a current OpenGL context, a way of presenting the rendered
// frame, and a queue of input and window events.
//
// Implementations are in the glfwplatform and sdlplatform packages. Windows
// must be created, polled and destroyed from the same goroutine, which must
// be locked to its OS thread.
package platform

// Config describes the window and OpenGL context to create.
type Config struct {
	Title  string
	Width  int
	Height int

	// requested OpenGL version. the profile is always the core profile
	GLMajor int
	GLMinor int
}

// DefaultConfig returns the configuration of the demo window: 800x600 with an
// OpenGL 3.3 core context.
func DefaultConfig() Config {
	return Config{
		Title:   "LearnOpenGL",
		Width:   800,
		Height:  600,
		GLMajor: 3,
		GLMinor: 3,
	}
}

// Window is a window with a current OpenGL context.
type Window interface {
	// PollEvents returns all events that have arrived since the previous call.
	// It does not block.
	PollEvents() []Event

	// SwapBuffers presents the rendered frame.
	SwapBuffers()

	// FramebufferSize returns the size of the framebuffer in pixels. This can
	// differ from the window size on high DPI displays.
	FramebufferSize() (int32, int32)

	// Destroy the window and context and release the windowing library.
	Destroy() error
}
