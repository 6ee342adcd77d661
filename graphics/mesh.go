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

// MeshBuffer owns a vertex array object and the vertex and index buffers
// that back it. The three objects are created together and released
// together.
type MeshBuffer struct {
	api API

	vao uint32
	vbo uint32
	ebo uint32

	// number of indices in the index buffer
	count int32
}

// NewMeshBuffer uploads the vertex and index data to the GPU and configures a
// vertex array object according to the layout. The data is copied and the
// slices can be reused by the caller.
//
// The length of the vertex data is not checked against the layout and the
// indices are not checked against the number of vertices. A mismatch is
// undefined behaviour at draw time.
func NewMeshBuffer(api API, vertices []float32, indices []uint32, layout VertexLayout) *MeshBuffer {
	mb := &MeshBuffer{
		api:   api,
		count: int32(len(indices)),
	}

	api.GenVertexArrays(1, &mb.vao)
	api.GenBuffers(1, &mb.vbo)
	api.GenBuffers(1, &mb.ebo)

	api.BindVertexArray(mb.vao)

	api.BindBuffer(ARRAY_BUFFER, mb.vbo)
	api.BufferData(ARRAY_BUFFER, len(vertices)*sizeofFloat, pointer(vertices), STATIC_DRAW)

	api.BindBuffer(ELEMENT_ARRAY_BUFFER, mb.ebo)
	api.BufferData(ELEMENT_ARRAY_BUFFER, len(indices)*sizeofIndex, pointer(indices), STATIC_DRAW)

	stride := layout.StrideBytes()
	for _, a := range layout.Attributes {
		api.VertexAttribPointerWithOffset(a.Slot, a.Size, FLOAT, false, stride, uintptr(a.Offset*sizeofFloat))
		api.EnableVertexAttribArray(a.Slot)
	}

	// the element buffer binding is part of the vertex array state so it must
	// be unbound after the vertex array
	api.BindBuffer(ARRAY_BUFFER, 0)
	api.BindVertexArray(0)
	api.BindBuffer(ELEMENT_ARRAY_BUFFER, 0)

	return mb
}

// pointer to the first element of the slice or nil if the slice is empty
func pointer[T float32 | uint32](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// VAO returns the name of the vertex array object, suitable for binding with
// BindVertexArray().
func (mb *MeshBuffer) VAO() uint32 {
	return mb.vao
}

// Count returns the number of indices in the index buffer.
func (mb *MeshBuffer) Count() int32 {
	return mb.count
}

// Destroy releases the vertex array object and both buffers. It is safe to
// call more than once.
func (mb *MeshBuffer) Destroy() {
	if mb.ebo != 0 {
		mb.api.DeleteBuffers(1, &mb.ebo)
		mb.ebo = 0
	}
	if mb.vbo != 0 {
		mb.api.DeleteBuffers(1, &mb.vbo)
		mb.vbo = 0
	}
	if mb.vao != 0 {
		mb.api.DeleteVertexArrays(1, &mb.vao)
		mb.vao = 0
	}
}
