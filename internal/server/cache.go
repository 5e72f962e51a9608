// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"io/fs"
	"sync"
	"time"

	"rsc.io/mdview"
)

// A renderCache holds rendered documents keyed by path.
// An entry is valid only while the file's modification time
// and size match those recorded when it was rendered.
type renderCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	doc     *mdview.Document
}

func newRenderCache() *renderCache {
	return &renderCache{entries: make(map[string]cacheEntry)}
}

func (c *renderCache) get(name string, info fs.FileInfo) (*mdview.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	if !ok || !e.modTime.Equal(info.ModTime()) || e.size != info.Size() {
		return nil, false
	}
	return e.doc, true
}

func (c *renderCache) put(name string, info fs.FileInfo, doc *mdview.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = cacheEntry{info.ModTime(), info.Size(), doc}
}

// invalidate drops the entry for name, reporting whether there was one.
func (c *renderCache) invalidate(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[name]
	delete(c.entries, name)
	return ok
}

func (c *renderCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
