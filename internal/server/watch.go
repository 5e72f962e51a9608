// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// A watcher invalidates cached renders and notifies live-reload
// clients when documents under the root change.
type watcher struct {
	s *Server
	w *fsnotify.Watcher
}

func (s *Server) newWatcher() (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	w := &watcher{s: s, w: fw}
	if err := w.addTree(s.cfg.Root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// addTree watches dir and the non-hidden directories beneath it.
// fsnotify watches are not recursive.
func (w *watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if file != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return errors.Wrapf(w.w.Add(file), "watch %s", file)
	})
}

func (w *watcher) run(ctx context.Context) {
	defer w.w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.s.log.Warn().Err(err).Msg("watch")
		}
	}
}

func (w *watcher) handle(ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				w.s.log.Warn().Err(err).Str("dir", ev.Name).Msg("watch new directory")
			}
			return
		}
	}
	if ev.Op == fsnotify.Chmod || !w.s.isDocument(ev.Name) {
		return
	}
	rel, err := filepath.Rel(w.s.cfg.Root, ev.Name)
	if err != nil {
		return
	}
	name := filepath.ToSlash(rel)
	w.s.cache.invalidate(name)
	w.s.log.Debug().Str("path", name).Str("op", ev.Op.String()).Msg("document changed")
	w.s.hub.notify(name)
}
