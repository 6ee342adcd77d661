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

package scene

// Default returns the built-in scene. Six colored vertices indexed into three
// triangles:
//
//	          2
//
//	      3       5
//
//	  0       4       1
func Default() Scene {
	return Scene{
		VertexShader:   "default.vert",
		FragmentShader: "default.frag",
		Color:          true,
		Vertices: []float32{
			// position          color
			-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0, // 0
			0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0, // 1
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, 1.0, // 2
			-0.25, 0.0, 0.0, 0.5, 0.0, 0.5, 1.0, // 3
			0.0, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0, // 4
			0.25, 0.0, 0.0, 0.5, 0.0, 0.5, 1.0, // 5
		},
		Indices: []uint32{0, 3, 4, 3, 2, 5, 4, 5, 1},
	}
}
