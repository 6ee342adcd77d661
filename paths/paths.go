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

package paths

import (
	"os"
	"path/filepath"

	"github.com/glfan/glfan/curated"
)

// the base path for all resources, relative to the working directory
const baseResourcePath = "resources"

// sub-directory of baseResourcePath containing shader source files
const shaderPath = "shaders"

// ResourcePath returns the absolute path of the resource, which is relative to
// the base resource directory in the current working directory.
func ResourcePath(resource ...string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	p := make([]string, 0, len(resource)+2)
	p = append(p, cwd, baseResourcePath)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

// ShaderPath returns the absolute path of the named shader source file. An
// absolute name is returned unchanged.
func ShaderPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	return ResourcePath(shaderPath, name)
}
