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

// Package shaderwatch notifies the program when shader source files change
// on disk, so that the shader program can be rebuilt without restarting.
//
// The notification is a signal only. The rebuild must happen on the goroutine
// that owns the OpenGL context, which should check the Changed() channel once
// per frame without blocking.
package shaderwatch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/glfan/glfan/curated"
	"github.com/glfan/glfan/logger"
)

// Watcher watches a set of files for changes.
type Watcher struct {
	watcher *fsnotify.Watcher

	// the cleaned paths of the files being watched
	files map[string]bool

	changed chan struct{}
	done    chan struct{}
}

// New creates a Watcher for the named files. The directories containing the
// files are watched rather than the files themselves because many editors
// save by replacing the file.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("shaderwatch: %v", err)
	}

	w := &Watcher{
		watcher: fw,
		files:   make(map[string]bool),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		f, err = filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, curated.Errorf("shaderwatch: %v", err)
		}
		w.files[f] = true
		dirs[filepath.Dir(f)] = true
	}

	for d := range dirs {
		err = fw.Add(d)
		if err != nil {
			fw.Close()
			return nil, curated.Errorf("shaderwatch: %v", err)
		}
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.files[filepath.Clean(ev.Name)] {
				continue
			}

			logger.Logf(logger.Allow, "shaderwatch", "%s changed", filepath.Base(ev.Name))

			// any number of changes before the signal is consumed result in a
			// single signal
			select {
			case w.changed <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "shaderwatch", err)
		}
	}
}

// Changed returns the channel on which change signals are sent.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops watching the files. It waits for the watching goroutine to end.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	if err != nil {
		return curated.Errorf("shaderwatch: %v", err)
	}
	return nil
}
