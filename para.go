// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import "strings"

// A Paragraph is a [Block] representing a paragraph:
// consecutive lines of text that no other block claims.
// Line breaks inside a paragraph are not preserved.
type Paragraph struct {
	Position
	Text string // inline-transformed, source lines joined by spaces
}

func (*Paragraph) Block() {}

func (b *Paragraph) printHTML(p *printer) {
	p.html(`<p class="markdown-paragraph">`, b.Text, "</p>\n")
}

// A paraBuilder is a [builder] for a [Paragraph].
type paraBuilder struct {
	start int
	end   int
	text  []string // each trimmed line of the paragraph
}

// startParagraph is a [starter] for a [Paragraph].
// It is the last starter, so it accepts any line: it either
// continues the open paragraph or starts a new one.
func startParagraph(p *parser, s line) bool {
	b, ok := p.open.(*paraBuilder)
	if !ok {
		b = &paraBuilder{start: s.n}
		p.addBlock(b)
	}
	b.end = s.n
	b.text = append(b.text, s.trimmed())
	return true
}

// extend would normally extend the paragraph with the line s,
// but we return false and let startParagraph handle extension,
// since any other starter that claims s must end the paragraph first.
func (b *paraBuilder) extend(p *parser, s line) (ok, done bool) {
	return false, false
}

func (b *paraBuilder) build(p *parser) Block {
	return &Paragraph{Position{b.start, b.end}, p.inline(strings.Join(b.text, " "))}
}
