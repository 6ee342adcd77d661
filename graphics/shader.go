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

import (
	"os"

	"github.com/glfan/glfan/curated"
)

// ShaderProgram owns a linked vertex and fragment shader program.
type ShaderProgram struct {
	api    API
	handle uint32

	// source files. only set when the program was created by
	// LoadShaderProgram() and required by Reload()
	vertPath string
	fragPath string
}

// NewShaderProgram compiles and links a program from vertex and fragment
// shader source.
//
// The compile and link status of the program is not checked. Broken source
// results in a program that draws nothing or draws incorrectly.
func NewShaderProgram(api API, vertSource string, fragSource string) *ShaderProgram {
	sh := &ShaderProgram{api: api}
	sh.handle = sh.createProgram(vertSource, fragSource)
	return sh
}

// LoadShaderProgram reads vertex and fragment shader source from the named
// files and creates a ShaderProgram from them.
func LoadShaderProgram(api API, vertPath string, fragPath string) (*ShaderProgram, error) {
	vert, frag, err := readSources(vertPath, fragPath)
	if err != nil {
		return nil, err
	}

	sh := NewShaderProgram(api, vert, frag)
	sh.vertPath = vertPath
	sh.fragPath = fragPath

	return sh, nil
}

func readSources(vertPath string, fragPath string) (string, string, error) {
	vert, err := os.ReadFile(vertPath)
	if err != nil {
		return "", "", curated.Errorf("shader: %v", err)
	}
	frag, err := os.ReadFile(fragPath)
	if err != nil {
		return "", "", curated.Errorf("shader: %v", err)
	}
	return string(vert), string(frag), nil
}

// compile and link shader program. returns the handle of the new program
func (sh *ShaderProgram) createProgram(vertSource string, fragSource string) uint32 {
	vertHandle := sh.api.CreateShader(VERTEX_SHADER)
	sh.api.ShaderSource(vertHandle, vertSource)
	sh.api.CompileShader(vertHandle)

	fragHandle := sh.api.CreateShader(FRAGMENT_SHADER)
	sh.api.ShaderSource(fragHandle, fragSource)
	sh.api.CompileShader(fragHandle)

	handle := sh.api.CreateProgram()
	sh.api.AttachShader(handle, vertHandle)
	sh.api.AttachShader(handle, fragHandle)
	sh.api.LinkProgram(handle)

	// now that the program has linked we no longer need the individual
	// shader objects
	sh.api.DeleteShader(vertHandle)
	sh.api.DeleteShader(fragHandle)

	return handle
}

// Handle returns the OpenGL name of the program. It will be zero after
// Destroy() has been called.
func (sh *ShaderProgram) Handle() uint32 {
	return sh.handle
}

// Activate makes the program current for subsequent draw calls.
func (sh *ShaderProgram) Activate() {
	sh.api.UseProgram(sh.handle)
}

// Reload reads the source files again and replaces the program with a newly
// linked one. The current program is kept if the files cannot be read.
//
// Only programs created with LoadShaderProgram() can be reloaded.
func (sh *ShaderProgram) Reload() error {
	if sh.vertPath == "" || sh.fragPath == "" {
		return curated.Errorf("shader: program was not loaded from files")
	}

	vert, frag, err := readSources(sh.vertPath, sh.fragPath)
	if err != nil {
		return err
	}

	handle := sh.createProgram(vert, frag)
	sh.Destroy()
	sh.handle = handle

	return nil
}

// Destroy releases the program. It is safe to call more than once.
func (sh *ShaderProgram) Destroy() {
	if sh.handle != 0 {
		sh.api.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}
