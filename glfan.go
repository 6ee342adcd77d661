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
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/glfan/glfan/curated"
	"github.com/glfan/glfan/graphics"
	"github.com/glfan/glfan/graphics/glcore"
	"github.com/glfan/glfan/logger"
	"github.com/glfan/glfan/modalflag"
	"github.com/glfan/glfan/platform"
	"github.com/glfan/glfan/platform/glfwplatform"
	"github.com/glfan/glfan/platform/sdlplatform"
	"github.com/glfan/glfan/renderloop"
	"github.com/glfan/glfan/scene"
	"github.com/glfan/glfan/shaderwatch"
	"github.com/glfan/glfan/statsview"
	"github.com/glfan/glfan/version"
)

// exit values
const (
	exitOK       = 0
	exitArgument = 10
	exitFatal    = 20
)

// the OpenGL context and the windowing libraries must only be used from the
// main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	showVersion := md.AddBool("version", false, "print version information and exit")
	md.AddSubModes("RUN", "CHECK")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgument
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "CHECK":
		err = check(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md.String(), err)
		if curated.Is(err, errArguments) {
			return exitArgument
		}
		return exitFatal
	}

	return exitOK
}

// pattern for errors caused by the command line. these are reported with the
// exitArgument value
const errArguments = "arguments: %v"

// loadScene returns the default scene if filename is empty.
func loadScene(filename string) (scene.Scene, error) {
	if filename == "" {
		return scene.Default(), nil
	}
	return scene.LoadFile(filename)
}

func check(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("checks that a scene is valid and that its shader files can be read")
	sceneFile := md.AddString("scene", "", "scene file (YAML). the built-in scene if empty")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(errArguments, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(errArguments, fmt.Sprintf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " ")))
	}

	s, err := loadScene(*sceneFile)
	if err != nil {
		return err
	}

	vert, frag, err := s.ShaderPaths()
	if err != nil {
		return err
	}
	for _, f := range []string{vert, frag} {
		_, err := os.Stat(f)
		if err != nil {
			return curated.Errorf("shader: %v", err)
		}
	}

	fmt.Fprintf(md.Output, "%d vertices, %d indices, %s, %s\n", s.Records(), len(s.Indices), vert, frag)

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	backend := md.AddString("backend", "GLFW", "windowing backend: GLFW, SDL")
	sceneFile := md.AddString("scene", "", "scene file (YAML). the built-in scene if empty")
	watch := md.AddBool("watch", false, "reload shader program when the shader files change")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server. requires the statsview build tag")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(errArguments, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(errArguments, fmt.Sprintf("unexpected arguments: %s", strings.Join(md.RemainingArgs(), " ")))
	}

	if *log {
		logger.SetEcho(md.Output)
	}
	logger.Log(logger.Allow, "glfan", version.String())

	if *stats {
		if !statsview.Available() {
			return curated.Errorf(errArguments, "statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	s, err := loadScene(*sceneFile)
	if err != nil {
		return err
	}
	vert, frag, err := s.ShaderPaths()
	if err != nil {
		return err
	}

	var win platform.Window
	switch strings.ToUpper(*backend) {
	case "GLFW":
		win, err = glfwplatform.NewWindow(platform.DefaultConfig())
	case "SDL":
		win, err = sdlplatform.NewWindow(platform.DefaultConfig())
	default:
		return curated.Errorf(errArguments, fmt.Sprintf("unknown backend: %s", *backend))
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Destroy(); err != nil {
			logger.Log(logger.Allow, "glfan", err)
		}
	}()

	api, err := glcore.Init()
	if err != nil {
		return err
	}

	program, err := graphics.LoadShaderProgram(api, vert, frag)
	if err != nil {
		return err
	}
	defer program.Destroy()

	mesh := graphics.NewMeshBuffer(api, s.Vertices, s.Indices, s.Layout())
	defer mesh.Destroy()

	loop := renderloop.NewLoop(api, win, program, mesh)
	loop.SetClearColor(s.ClearColor)

	if *watch {
		w, err := shaderwatch.New(vert, frag)
		if err != nil {
			return err
		}
		defer w.Close()
		loop.SetReload(w.Changed())
	}

	loop.Run()

	return nil
}
