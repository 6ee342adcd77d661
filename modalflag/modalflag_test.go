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

package modalflag_test

import (
	"testing"

	"github.com/glfan/glfan/modalflag"
	"github.com/glfan/glfan/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)

	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddSubModes("run", "check")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")
}

func TestNamedMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"check", "-scene", "triangle.yaml", "extra"})
	md.AddSubModes("RUN", "CHECK")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "CHECK")

	md.NewMode()
	scene := md.AddString("scene", "", "scene file")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *scene, "triangle.yaml")
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "extra")

	// no sub-modes in the second layer so the path is unchanged
	test.ExpectEquality(t, md.Path(), "CHECK")
}

func TestFlagsForDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-watch", "-backend", "sdl"})
	version := md.AddBool("version", false, "print version and exit")
	md.AddSubModes("RUN", "CHECK")

	// -watch is not known to the first layer. the default mode is selected
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, *version, false)

	md.NewMode()
	watch := md.AddBool("watch", false, "reload shaders")
	backend := md.AddString("backend", "GLFW", "windowing backend")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *watch, true)
	test.ExpectEquality(t, *backend, "sdl")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlagBeforeMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-version", "CHECK"})
	version := md.AddBool("version", false, "print version and exit")
	md.AddSubModes("RUN", "CHECK")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *version, true)
	test.ExpectEquality(t, md.Mode(), "CHECK")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestVisit(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-b", "-a=x"})
	md.AddString("a", "", "")
	md.AddBool("b", false, "")
	md.AddInt("c", 0, "")

	_, err := md.Parse()
	test.DemandSuccess(t, err)

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.DemandEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "a")
	test.ExpectEquality(t, visited[1], "b")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpSubModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "CHECK")
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  available sub-modes: RUN, CHECK\n" +
		"    default: RUN\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())
}

func TestHelpFlagsAndSubModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", false, "test flag")
	md.AddSubModes("RUN", "CHECK")
	_, _ = md.Parse()

	expected := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag\n" +
		"\n" +
		"  available sub-modes: RUN, CHECK\n" +
		"    default: RUN\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())
}

func TestHelpForMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"CHECK", "-help"})
	md.AddSubModes("RUN", "CHECK")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("checks a scene file")
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage: for CHECK mode\n" +
		"\n" +
		"checks a scene file\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())
}
