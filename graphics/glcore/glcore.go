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

// Package glcore implements the graphics.API interface with the go-gl OpenGL
// 3.3 core profile bindings.
package glcore

import (
	"unsafe"

	"github.com/glfan/glfan/curated"
	"github.com/glfan/glfan/graphics"
	"github.com/glfan/glfan/logger"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Core forwards every call to the OpenGL driver of the current context.
type Core struct{}

// Init loads the OpenGL function pointers. It must be called after an OpenGL
// context has been made current and from the goroutine that owns the
// context.
func Init() (*Core, error) {
	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf("glcore: %v", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "glcore", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "glcore", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "glcore", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "glcore", "glsl: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return &Core{}, nil
}

var _ graphics.API = (*Core)(nil)

func (*Core) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (*Core) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (*Core) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*Core) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*Core) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*Core) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*Core) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*Core) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*Core) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*Core) GenVertexArrays(n int32, arrays *uint32) {
	gl.GenVertexArrays(n, arrays)
}

func (*Core) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (*Core) DeleteVertexArrays(n int32, arrays *uint32) {
	gl.DeleteVertexArrays(n, arrays)
}

func (*Core) GenBuffers(n int32, buffers *uint32) {
	gl.GenBuffers(n, buffers)
}

func (*Core) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (*Core) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*Core) DeleteBuffers(n int32, buffers *uint32) {
	gl.DeleteBuffers(n, buffers)
}

func (*Core) VertexAttribPointerWithOffset(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*Core) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*Core) ClearColor(red float32, green float32, blue float32, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (*Core) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*Core) Viewport(x int32, y int32, width int32, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*Core) DrawElementsWithOffset(mode uint32, count int32, xtype uint32, indices uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, indices)
}
