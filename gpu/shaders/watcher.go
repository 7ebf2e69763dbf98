// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of shader files. Directories
// are watched rather than files so that editors that save by
// renaming a new file over the old one are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan string
	done    chan bool
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher returns a watcher of the given files. Changed file paths
// are sent on [Watcher.Changed] until [Watcher.Close] is called.
func NewWatcher(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fw,
		files:   map[string]bool{},
		changed: make(chan string, 16),
		done:    make(chan bool),
	}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// Changed returns the channel on which changed files are sent.
// A change is dropped if the channel is full.
func (w *Watcher) Changed() <-chan string { return w.changed }

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			select {
			case w.changed <- name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("shaders: watcher error", "err", err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
