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

// Package scene describes what is drawn: the shader source files, the layout
// of the vertex data, the vertex and index data itself, and the color the
// framebuffer is cleared to.
//
// The Default() scene is built into the program. Other scenes can be loaded
// from YAML files. Fields missing from a file take the value of the default
// scene. For example, a single triangle with no color attribute:
//
//	vertex_shader: position.vert
//	fragment_shader: position.frag
//	color: false
//	vertices: [-0.5, -0.5, 0.0,  0.5, -0.5, 0.0,  0.0, 0.5, 0.0]
//	indices: [0, 1, 2]
package scene

import (
	"errors"
	"io"
	"os"

	"github.com/glfan/glfan/curated"
	"github.com/glfan/glfan/graphics"
	"github.com/glfan/glfan/paths"
	"gopkg.in/yaml.v3"
)

// Scene is everything needed to build the shader program and mesh buffer.
type Scene struct {
	// shader source file names. relative names are resolved with
	// paths.ShaderPath()
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`

	// whether each vertex has a color attribute following the position. see
	// graphics.PositionColor and graphics.PositionOnly
	Color bool `yaml:"color"`

	Vertices []float32 `yaml:"vertices"`
	Indices  []uint32  `yaml:"indices"`

	ClearColor [4]float32 `yaml:"clear_color"`
}

// Load a scene from a YAML document. The scene is validated before it is
// returned.
func Load(r io.Reader) (Scene, error) {
	s := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, curated.Errorf("scene: %v", err)
	}

	err = s.Validate()
	if err != nil {
		return Scene{}, err
	}

	return s, nil
}

// LoadFile loads a scene from the named YAML file.
func LoadFile(filename string) (Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Scene{}, curated.Errorf("scene: %v", err)
	}
	defer f.Close()

	return Load(f)
}

// Layout returns the vertex layout of the scene's vertex data.
func (s Scene) Layout() graphics.VertexLayout {
	if s.Color {
		return graphics.PositionColor
	}
	return graphics.PositionOnly
}

// Records returns the number of vertices in the scene.
func (s Scene) Records() int {
	return s.Layout().Records(len(s.Vertices))
}

// Validate checks that the vertex data is consistent with the layout and that
// every index refers to a vertex.
func (s Scene) Validate() error {
	if s.VertexShader == "" {
		return curated.Errorf("scene: no vertex shader")
	}
	if s.FragmentShader == "" {
		return curated.Errorf("scene: no fragment shader")
	}

	layout := s.Layout()

	if len(s.Vertices) == 0 {
		return curated.Errorf("scene: no vertices")
	}
	if len(s.Vertices)%layout.Stride != 0 {
		return curated.Errorf("scene: %d floats is not a whole number of %d float vertices", len(s.Vertices), layout.Stride)
	}

	if len(s.Indices) == 0 {
		return curated.Errorf("scene: no indices")
	}

	records := s.Records()
	for i, idx := range s.Indices {
		if int(idx) >= records {
			return curated.Errorf("scene: index %d (%d) is out of range for %d vertices", i, idx, records)
		}
	}

	return nil
}

// ShaderPaths returns the paths of the vertex and fragment shader source
// files.
func (s Scene) ShaderPaths() (string, string, error) {
	vert, err := paths.ShaderPath(s.VertexShader)
	if err != nil {
		return "", "", curated.Errorf("scene: %v", err)
	}
	frag, err := paths.ShaderPath(s.FragmentShader)
	if err != nil {
		return "", "", curated.Errorf("scene: %v", err)
	}
	return vert, frag, nil
}
