// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

// A ThematicBreak is a [Block] representing a thematic break,
// displayed as a horizontal rule (<hr> tag).
type ThematicBreak struct {
	Position
}

func (*ThematicBreak) Block() {}

func (b *ThematicBreak) printHTML(p *printer) {
	p.html(`<hr class="markdown-divider" />`, "\n")
}

// startThematicBreak is a [starter] for a [ThematicBreak].
func startThematicBreak(p *parser, s line) bool {
	if !isThematicBreak(s) {
		return false
	}
	p.doneBlock(&ThematicBreak{Position{s.n, s.n}})
	return true
}

// isThematicBreak reports whether s is three or more of the same
// character, '-', '*', or '_', and nothing else but surrounding space.
func isThematicBreak(s line) bool {
	t := s.trimmed()
	if len(t) < 3 {
		return false
	}
	c := t[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(t); i++ {
		if t[i] != c {
			return false
		}
	}
	return true
}
