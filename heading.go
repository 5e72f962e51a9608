// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"fmt"
	"strconv"
)

// A Heading is a [Block] representing a heading line, like "## Usage",
// displayed with the <h1> through <h6> tags.
type Heading struct {
	Position

	// Level is the heading level: 1 through 6.
	Level int

	// Text is the heading text, after inline transformation.
	Text string

	// ID is the element id, derived from the heading's line
	// by [HeadingID]. Outline entries for the same line carry the same ID.
	ID string
}

func (*Heading) Block() {}

func (b *Heading) printHTML(p *printer) {
	fmt.Fprintf(p, `<h%d id="%s" data-heading-id="%s" class="markdown-heading markdown-h%d">`, b.Level, b.ID, b.ID, b.Level)
	p.WriteString(b.Text)
	fmt.Fprintf(p, "</h%d>\n", b.Level)
}

// HeadingID returns the id of a heading on the given zero-based line
// of a document body. Ids depend only on position, never on heading text,
// so duplicate headings get distinct ids.
func HeadingID(lineIndex int) string {
	return "heading-" + strconv.Itoa(lineIndex)
}

// classifyHeading reports whether s is a heading line:
// optional surrounding space, then 1 to 6 '#' characters,
// then a space or tab or the end of the line.
// It returns the heading level and the trimmed heading text.
//
// Both the renderer and [Outline] identify headings with classifyHeading.
func classifyHeading(s line) (level int, text string, ok bool) {
	t := s.trimmed()
	for level < len(t) && t[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level < len(t) && t[level] != ' ' && t[level] != '\t' {
		return 0, "", false
	}
	return level, trimSpaceTab(t[level:]), true
}

// startHeading is a [starter] for a [Heading].
func startHeading(p *parser, s line) bool {
	level, text, ok := classifyHeading(s)
	if !ok {
		return false
	}
	p.doneBlock(&Heading{
		Position: Position{s.n, s.n},
		Level:    level,
		Text:     p.inline(text),
		ID:       HeadingID(s.n),
	})
	return true
}
