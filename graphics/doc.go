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

// Package graphics contains thin owning wrappers around OpenGL objects. A
// ShaderProgram owns a linked program object and a MeshBuffer owns a vertex
// array object together with its vertex and index buffers.
//
// All OpenGL calls are made through the API interface. The glcore package
// provides the implementation that talks to the driver and the glmock package
// provides a recording implementation for testing.
//
// OpenGL keeps global binding state for the current context (the current
// program, the bound vertex array, etc.) and so do the types in this package.
// Activating a ShaderProgram or binding the VAO of a MeshBuffer changes that
// state for every later draw call. None of the types are safe for use from
// more than one goroutine and they must only be used from the goroutine that
// owns the current context.
package graphics
