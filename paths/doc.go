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

// Package paths contains functions to prepare paths to glfan resources.
//
// Resources live in the "resources" directory of the program's current
// working directory. The ShaderPath() function returns the path of a shader
// source file. For example:
//
//	p, err := paths.ShaderPath("default.vert")
//
// will return, if the program is started in /home/user/glfan:
//
//	/home/user/glfan/resources/shaders/default.vert
//
// No check is made that the resource exists.
package paths
