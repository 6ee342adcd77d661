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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glfan/glfan/test"
)

func TestVersionFlag(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"-version"}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "glfan "), w.String())
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"-help"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: RUN, CHECK"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"RUN", "-help"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "-backend"), w.String())
}

func TestArgumentErrors(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"-nosuchflag"}), exitArgument)

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"CHECK", "unexpected"}), exitArgument)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in CHECK mode: "), w.String())

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"RUN", "-backend", "VULKAN"}), exitArgument)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown backend: VULKAN"), w.String())
}

func TestCheckDefaultScene(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"CHECK"}), exitOK, w.String())
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "6 vertices, 9 indices, "), w.String())
}

func TestCheckSceneFile(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"CHECK", "-scene", filepath.Join("resources", "scenes", "triangle.yaml")}), exitOK, w.String())
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "3 vertices, 3 indices, "), w.String())
}

func TestCheckMissingShader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("vertex_shader: nosuchshader.vert\n"), 0600))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"CHECK", "-scene", fn}), exitFatal)
	test.ExpectSuccess(t, strings.Contains(w.String(), "nosuchshader.vert"), w.String())
}

func TestCheckBadScene(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("indices: [0, 1, 99]\n"), 0600))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"CHECK", "-scene", fn}), exitFatal)
	test.ExpectSuccess(t, strings.Contains(w.String(), "out of range"), w.String())
}
