// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

// An OutlineEntry describes one heading of a document body.
type OutlineEntry struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Level     int    `json:"level" yaml:"level"`
	LineIndex int    `json:"lineIndex" yaml:"lineIndex"`
}

// maxOutlineLevel is the deepest heading level listed in an outline.
// Deeper headings still render as headings.
const maxOutlineLevel = 4

// Outline returns the headings of body, levels 1 through 4, in document
// order. Headings with no text and lines inside fenced code are skipped.
// Each entry's ID equals the id of the heading element that [Render]
// produces for the same line.
//
// Outline scans body independently of the renderer; it has no state,
// and calling it twice on the same body returns equal results.
func Outline(body string) []OutlineEntry {
	return outline(splitLines(body))
}

func outline(lines []line) []OutlineEntry {
	var list []OutlineEntry
	inFence := false
	for _, s := range lines {
		if _, ok := isFence(s); ok {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		level, title, ok := classifyHeading(s)
		if !ok || title == "" || level > maxOutlineLevel {
			continue
		}
		list = append(list, OutlineEntry{
			ID:        HeadingID(s.n),
			Title:     title,
			Level:     level,
			LineIndex: s.n,
		})
	}
	return list
}
