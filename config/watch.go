// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/offaxis"
)

// Watcher reloads a rig file whenever it is written or replaced, so a
// display can be re-measured while the application runs.
//
// The parent directory is watched rather than the file itself, which keeps
// working when editors save by renaming a temporary file over the original.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. Events that happen after NewWatcher
// returns are delivered by Run.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if _, err := FormatFromPath(abs); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	return &Watcher{path: abs, watcher: fw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run calls fn with the freshly loaded rig (or the load error) after every
// write or create of the file, until ctx is done or the watcher is closed.
// fn runs on the Run goroutine; hand the rig to the render goroutine before
// applying it to a camera.
func (w *Watcher) Run(ctx context.Context, fn func(*Rig, error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			rig, err := Load(w.path)
			if err == nil {
				offaxis.Logger().Info("config: rig reloaded", "path", w.path)
			}
			fn(rig, err)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			offaxis.Logger().Warn("config: watch error", "path", w.path, "err", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
