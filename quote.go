// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import "strings"

// A Quote is a [Block] representing a block quote:
// consecutive lines starting with '>'.
type Quote struct {
	Position
	Text string // inline-transformed content, lines joined by "\n"
}

func (*Quote) Block() {}

func (b *Quote) printHTML(p *printer) {
	p.html(`<blockquote class="markdown-blockquote">`, b.Text, "</blockquote>\n")
}

// trimQuote trims the quote marker from s, reporting whether it had one.
func trimQuote(s line) (string, bool) {
	t := s.trimmed()
	if !strings.HasPrefix(t, ">") {
		return "", false
	}
	return strings.TrimSpace(t[1:]), true
}

// startBlockQuote is a [starter] for a [Quote].
func startBlockQuote(p *parser, s line) bool {
	text, ok := trimQuote(s)
	if !ok {
		return false
	}
	p.addBlock(&quoteBuilder{start: s.n, end: s.n, text: []string{text}})
	return true
}

// A quoteBuilder is a [builder] for a [Quote].
// Any line without a quote marker ends the quote, including a blank line.
type quoteBuilder struct {
	start int
	end   int
	text  []string
}

func (b *quoteBuilder) extend(p *parser, s line) (ok, done bool) {
	text, ok := trimQuote(s)
	if !ok {
		return false, false
	}
	b.end = s.n
	b.text = append(b.text, text)
	return true, false
}

func (b *quoteBuilder) build(p *parser) Block {
	return &Quote{Position{b.start, b.end}, p.inline(strings.Join(b.text, "\n"))}
}
