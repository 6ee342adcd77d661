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

// size of a float32 in bytes. vertex data is always made of float32 values.
const sizeofFloat = 4

// size of a uint32 in bytes. index data is always made of uint32 values.
const sizeofIndex = 4

// Attribute describes one vertex shader input in an interleaved vertex
// buffer. Size and Offset are measured in floats.
type Attribute struct {
	Slot   uint32
	Size   int32
	Offset int
}

// VertexLayout describes how an interleaved vertex buffer should be
// interpreted. Stride is the number of floats in a single vertex record.
type VertexLayout struct {
	Attributes []Attribute
	Stride     int
}

// PositionColor is the layout of a vertex with a three float position in slot
// zero and a four float RGBA color in slot one.
var PositionColor = VertexLayout{
	Attributes: []Attribute{
		{Slot: 0, Size: 3, Offset: 0},
		{Slot: 1, Size: 4, Offset: 3},
	},
	Stride: 7,
}

// PositionOnly is the layout of a vertex with only a three float position in
// slot zero.
var PositionOnly = VertexLayout{
	Attributes: []Attribute{
		{Slot: 0, Size: 3, Offset: 0},
	},
	Stride: 3,
}

// StrideBytes returns the size of a single vertex record in bytes.
func (l VertexLayout) StrideBytes() int32 {
	return int32(l.Stride * sizeofFloat)
}

// Records returns the number of whole vertex records in a vertex array of
// numFloats values.
func (l VertexLayout) Records(numFloats int) int {
	if l.Stride <= 0 {
		return 0
	}
	return numFloats / l.Stride
}
