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

package graphics

import "unsafe"

// OpenGL enumeration values used by the package. The values are those defined
// by the OpenGL specification and can be passed to any API implementation
// unchanged.
const (
	COLOR_BUFFER_BIT     = 0x00004000
	TRIANGLES            = 0x0004
	UNSIGNED_INT         = 0x1405
	FLOAT                = 0x1406
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4
	FRAGMENT_SHADER      = 0x8B30
	VERTEX_SHADER        = 0x8B31
)

// API is the subset of OpenGL used by the program. The method signatures
// follow the go-gl bindings with the exception of ShaderSource(), which takes
// a Go string.
type API interface {
	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArrays(n int32, arrays *uint32)
	BindVertexArray(array uint32)
	DeleteVertexArrays(n int32, arrays *uint32)

	GenBuffers(n int32, buffers *uint32)
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffers(n int32, buffers *uint32)

	VertexAttribPointerWithOffset(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	ClearColor(red float32, green float32, blue float32, alpha float32)
	Clear(mask uint32)
	Viewport(x int32, y int32, width int32, height int32)
	DrawElementsWithOffset(mode uint32, count int32, xtype uint32, indices uintptr)
}
