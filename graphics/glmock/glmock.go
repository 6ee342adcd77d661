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

// Package glmock implements the graphics.API interface without a GPU. Every
// call is recorded and the state that matters to the program is tracked:
// object lifetimes, buffer contents, vertex array state, the current program
// and the draw calls made.
//
// Misuse of the API, for example deleting an object twice or drawing without
// a bound vertex array, is recorded in the Errors field rather than causing a
// panic. Tests should check that Errors is empty.
package glmock

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/glfan/glfan/graphics"
)

// Call is a single recorded call to the API.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Shader is the state of a shader object.
type Shader struct {
	Type     uint32
	Source   string
	Compiled bool
	Deleted  bool
}

// Program is the state of a program object.
type Program struct {
	Attached []uint32
	Linked   bool
	Deleted  bool
}

// Buffer is the state of a buffer object.
type Buffer struct {
	Data    []byte
	Usage   uint32
	Deleted bool
}

// Floats interprets the buffer data as float32 values.
func (b *Buffer) Floats() []float32 {
	f := make([]float32, len(b.Data)/4)
	for i := range f {
		f[i] = math.Float32frombits(binary.NativeEndian.Uint32(b.Data[i*4:]))
	}
	return f
}

// Uint32s interprets the buffer data as uint32 values.
func (b *Buffer) Uint32s() []uint32 {
	u := make([]uint32, len(b.Data)/4)
	for i := range u {
		u[i] = binary.NativeEndian.Uint32(b.Data[i*4:])
	}
	return u
}

// VertexAttrib is the state of a single vertex attribute of a vertex array.
type VertexAttrib struct {
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
	Enabled    bool
}

// VertexArray is the state of a vertex array object.
type VertexArray struct {
	ElementBuffer uint32
	Attribs       map[uint32]*VertexAttrib
	Deleted       bool
}

// Draw is a recorded draw call, along with the binding state at the time of
// the call.
type Draw struct {
	Mode        uint32
	Count       int32
	Type        uint32
	Offset      uintptr
	Program     uint32
	VertexArray uint32
}

// GL is the recording implementation of graphics.API. The zero value is not
// usable; use New().
type GL struct {
	Calls  []Call
	Errors []string
	Draws  []Draw

	CurrentProgram    uint32
	BoundVertexArray  uint32
	ArrayBuffer       uint32
	CurrentViewport   [4]int32
	CurrentClearColor [4]float32

	// element array binding when no vertex array is bound
	elementBuffer uint32

	// object names are allocated from a single counter so that a name is
	// never shared between objects of different types
	lastName uint32

	shaders      map[uint32]*Shader
	programs     map[uint32]*Program
	vertexArrays map[uint32]*VertexArray
	buffers      map[uint32]*Buffer
}

var _ graphics.API = (*GL)(nil)

// New is the preferred method of initialisation for the GL type.
func New() *GL {
	return &GL{
		shaders:      make(map[uint32]*Shader),
		programs:     make(map[uint32]*Program),
		vertexArrays: make(map[uint32]*VertexArray),
		buffers:      make(map[uint32]*Buffer),
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) errorf(format string, args ...any) {
	g.Errors = append(g.Errors, fmt.Sprintf(format, args...))
}

func (g *GL) newName() uint32 {
	g.lastName++
	return g.lastName
}

// Count returns the number of times the named function has been called.
func (g *GL) Count(name string) int {
	var n int
	for _, c := range g.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CountWith returns the number of times the named function has been called
// with the first argument equal to arg.
func (g *GL) CountWith(name string, arg any) int {
	var n int
	for _, c := range g.Calls {
		if c.Name == name && len(c.Args) > 0 && c.Args[0] == arg {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls, draws and errors. Object state is kept.
func (g *GL) Reset() {
	g.Calls = g.Calls[:0]
	g.Draws = g.Draws[:0]
	g.Errors = g.Errors[:0]
}

// Live returns the number of objects of each type that have been created and
// not yet deleted.
func (g *GL) Live() (shaders int, programs int, vertexArrays int, buffers int) {
	for _, o := range g.shaders {
		if !o.Deleted {
			shaders++
		}
	}
	for _, o := range g.programs {
		if !o.Deleted {
			programs++
		}
	}
	for _, o := range g.vertexArrays {
		if !o.Deleted {
			vertexArrays++
		}
	}
	for _, o := range g.buffers {
		if !o.Deleted {
			buffers++
		}
	}
	return shaders, programs, vertexArrays, buffers
}

// Shader returns the state of the named shader object or nil.
func (g *GL) Shader(name uint32) *Shader {
	return g.shaders[name]
}

// Program returns the state of the named program object or nil.
func (g *GL) Program(name uint32) *Program {
	return g.programs[name]
}

// VertexArray returns the state of the named vertex array object or nil.
func (g *GL) VertexArray(name uint32) *VertexArray {
	return g.vertexArrays[name]
}

// Buffer returns the state of the named buffer object or nil.
func (g *GL) Buffer(name uint32) *Buffer {
	return g.buffers[name]
}

// Records returns the number of whole records that the attribute in the
// given slot of the vertex array will read from its buffer.
func (g *GL) Records(vao uint32, slot uint32) int {
	va := g.vertexArrays[vao]
	if va == nil {
		return 0
	}
	a := va.Attribs[slot]
	if a == nil || !a.Enabled || a.Stride <= 0 {
		return 0
	}
	b := g.buffers[a.Buffer]
	if b == nil {
		return 0
	}
	return len(b.Data) / int(a.Stride)
}

// Indices returns the number of uint32 indices in the element buffer of the
// vertex array.
func (g *GL) Indices(vao uint32) int {
	va := g.vertexArrays[vao]
	if va == nil {
		return 0
	}
	b := g.buffers[va.ElementBuffer]
	if b == nil {
		return 0
	}
	return len(b.Data) / 4
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	name := g.newName()
	g.record("CreateShader", xtype)
	g.shaders[name] = &Shader{Type: xtype}
	return name
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource", shader, source)
	sh, ok := g.shaders[shader]
	if !ok || sh.Deleted {
		g.errorf("ShaderSource: no shader %d", shader)
		return
	}
	sh.Source = source
}

func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader", shader)
	sh, ok := g.shaders[shader]
	if !ok || sh.Deleted {
		g.errorf("CompileShader: no shader %d", shader)
		return
	}
	sh.Compiled = true
}

func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader", shader)
	if shader == 0 {
		return
	}
	sh, ok := g.shaders[shader]
	if !ok {
		g.errorf("DeleteShader: no shader %d", shader)
		return
	}
	if sh.Deleted {
		g.errorf("DeleteShader: shader %d already deleted", shader)
		return
	}
	sh.Deleted = true
}

func (g *GL) CreateProgram() uint32 {
	name := g.newName()
	g.record("CreateProgram")
	g.programs[name] = &Program{}
	return name
}

func (g *GL) AttachShader(program uint32, shader uint32) {
	g.record("AttachShader", program, shader)
	pr, ok := g.programs[program]
	if !ok || pr.Deleted {
		g.errorf("AttachShader: no program %d", program)
		return
	}
	if sh, ok := g.shaders[shader]; !ok || sh.Deleted {
		g.errorf("AttachShader: no shader %d", shader)
		return
	}
	pr.Attached = append(pr.Attached, shader)
}

func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram", program)
	pr, ok := g.programs[program]
	if !ok || pr.Deleted {
		g.errorf("LinkProgram: no program %d", program)
		return
	}
	pr.Linked = true
}

func (g *GL) UseProgram(program uint32) {
	g.record("UseProgram", program)
	if program != 0 {
		if pr, ok := g.programs[program]; !ok || pr.Deleted {
			g.errorf("UseProgram: no program %d", program)
			return
		}
	}
	g.CurrentProgram = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram", program)
	if program == 0 {
		return
	}
	pr, ok := g.programs[program]
	if !ok {
		g.errorf("DeleteProgram: no program %d", program)
		return
	}
	if pr.Deleted {
		g.errorf("DeleteProgram: program %d already deleted", program)
		return
	}
	pr.Deleted = true
}

func (g *GL) GenVertexArrays(n int32, arrays *uint32) {
	g.record("GenVertexArrays", n)
	names := unsafe.Slice(arrays, n)
	for i := range names {
		names[i] = g.newName()
		g.vertexArrays[names[i]] = &VertexArray{Attribs: make(map[uint32]*VertexAttrib)}
	}
}

func (g *GL) BindVertexArray(array uint32) {
	g.record("BindVertexArray", array)
	if array != 0 {
		if va, ok := g.vertexArrays[array]; !ok || va.Deleted {
			g.errorf("BindVertexArray: no vertex array %d", array)
			return
		}
	}
	g.BoundVertexArray = array
}

func (g *GL) DeleteVertexArrays(n int32, arrays *uint32) {
	names := unsafe.Slice(arrays, n)
	g.record("DeleteVertexArrays", n, append([]uint32{}, names...))
	for _, name := range names {
		if name == 0 {
			continue
		}
		va, ok := g.vertexArrays[name]
		if !ok {
			g.errorf("DeleteVertexArrays: no vertex array %d", name)
			continue
		}
		if va.Deleted {
			g.errorf("DeleteVertexArrays: vertex array %d already deleted", name)
			continue
		}
		va.Deleted = true
		if g.BoundVertexArray == name {
			g.BoundVertexArray = 0
		}
	}
}

func (g *GL) GenBuffers(n int32, buffers *uint32) {
	g.record("GenBuffers", n)
	names := unsafe.Slice(buffers, n)
	for i := range names {
		names[i] = g.newName()
		g.buffers[names[i]] = &Buffer{}
	}
}

func (g *GL) BindBuffer(target uint32, buffer uint32) {
	g.record("BindBuffer", target, buffer)
	if buffer != 0 {
		if b, ok := g.buffers[buffer]; !ok || b.Deleted {
			g.errorf("BindBuffer: no buffer %d", buffer)
			return
		}
	}

	switch target {
	case graphics.ARRAY_BUFFER:
		g.ArrayBuffer = buffer
	case graphics.ELEMENT_ARRAY_BUFFER:
		if g.BoundVertexArray != 0 {
			g.vertexArrays[g.BoundVertexArray].ElementBuffer = buffer
		} else {
			g.elementBuffer = buffer
		}
	default:
		g.errorf("BindBuffer: unsupported target %#x", target)
	}
}

// the buffer bound to the target
func (g *GL) bound(target uint32) uint32 {
	switch target {
	case graphics.ARRAY_BUFFER:
		return g.ArrayBuffer
	case graphics.ELEMENT_ARRAY_BUFFER:
		if g.BoundVertexArray != 0 {
			return g.vertexArrays[g.BoundVertexArray].ElementBuffer
		}
		return g.elementBuffer
	}
	return 0
}

func (g *GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	g.record("BufferData", target, size, usage)
	name := g.bound(target)
	if name == 0 {
		g.errorf("BufferData: no buffer bound to target %#x", target)
		return
	}
	b := g.buffers[name]
	b.Usage = usage
	b.Data = make([]byte, size)
	if data != nil {
		copy(b.Data, unsafe.Slice((*byte)(data), size))
	}
}

func (g *GL) DeleteBuffers(n int32, buffers *uint32) {
	names := unsafe.Slice(buffers, n)
	g.record("DeleteBuffers", n, append([]uint32{}, names...))
	for _, name := range names {
		if name == 0 {
			continue
		}
		b, ok := g.buffers[name]
		if !ok {
			g.errorf("DeleteBuffers: no buffer %d", name)
			continue
		}
		if b.Deleted {
			g.errorf("DeleteBuffers: buffer %d already deleted", name)
			continue
		}
		b.Deleted = true
		if g.ArrayBuffer == name {
			g.ArrayBuffer = 0
		}
		if g.elementBuffer == name {
			g.elementBuffer = 0
		}
	}
}

func (g *GL) VertexAttribPointerWithOffset(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	g.record("VertexAttribPointerWithOffset", index, size, xtype, normalized, stride, offset)
	if g.BoundVertexArray == 0 {
		g.errorf("VertexAttribPointerWithOffset: no vertex array bound")
		return
	}
	if g.ArrayBuffer == 0 {
		g.errorf("VertexAttribPointerWithOffset: no array buffer bound")
		return
	}
	va := g.vertexArrays[g.BoundVertexArray]
	a, ok := va.Attribs[index]
	if !ok {
		a = &VertexAttrib{}
		va.Attribs[index] = a
	}
	a.Size = size
	a.Type = xtype
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = g.ArrayBuffer
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray", index)
	if g.BoundVertexArray == 0 {
		g.errorf("EnableVertexAttribArray: no vertex array bound")
		return
	}
	va := g.vertexArrays[g.BoundVertexArray]
	a, ok := va.Attribs[index]
	if !ok {
		a = &VertexAttrib{}
		va.Attribs[index] = a
	}
	a.Enabled = true
}

func (g *GL) ClearColor(red float32, green float32, blue float32, alpha float32) {
	g.record("ClearColor", red, green, blue, alpha)
	g.CurrentClearColor = [4]float32{red, green, blue, alpha}
}

func (g *GL) Clear(mask uint32) {
	g.record("Clear", mask)
}

func (g *GL) Viewport(x int32, y int32, width int32, height int32) {
	g.record("Viewport", x, y, width, height)
	g.CurrentViewport = [4]int32{x, y, width, height}
}

func (g *GL) DrawElementsWithOffset(mode uint32, count int32, xtype uint32, indices uintptr) {
	g.record("DrawElementsWithOffset", mode, count, xtype, indices)
	if g.BoundVertexArray == 0 {
		g.errorf("DrawElementsWithOffset: no vertex array bound")
		return
	}
	if g.CurrentProgram == 0 {
		g.errorf("DrawElementsWithOffset: no program in use")
		return
	}
	g.Draws = append(g.Draws, Draw{
		Mode:        mode,
		Count:       count,
		Type:        xtype,
		Offset:      indices,
		Program:     g.CurrentProgram,
		VertexArray: g.BoundVertexArray,
	})
}
