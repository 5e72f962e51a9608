// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"strconv"
	"strings"
)

// A CodeBlock is a [Block] representing a fenced code block,
// displayed as a panel with a language label, a copy button,
// and the code in <pre><code> tags.
type CodeBlock struct {
	Position

	// ID is the element id of the panel, also used as the
	// [Region] ID for the copy button.
	ID string

	// Lang is the language tag from the opening fence, or "text".
	Lang string

	// Text is the source between the fences, lines joined by "\n".
	Text string

	// Highlighted is the syntax-highlighted HTML for Text,
	// if highlighting was requested and the language is known.
	Highlighted string
}

func (*CodeBlock) Block() {}

func (b *CodeBlock) printHTML(p *printer) {
	p.html(`<div class="markdown-code-block" id="`, b.ID, `">`, "\n")
	p.html(`<div class="markdown-code-header">`)
	p.html(`<span class="markdown-code-dots"><span></span><span></span><span></span></span>`)
	p.html(`<span class="markdown-code-lang">`)
	p.text(b.Lang)
	p.html(`</span>`)
	p.html(`<button type="button" class="markdown-code-copy" data-copy-target="`, b.ID, `" data-code="`)
	p.text(b.Text)
	p.html(`">Copy</button>`)
	p.html("</div>\n")
	p.html(`<pre><code class="language-`)
	p.text(b.Lang)
	p.html(`">`)
	if b.Highlighted != "" {
		p.html(b.Highlighted)
	} else {
		p.text(b.Text)
	}
	p.html("</code></pre>\n")
	p.html("</div>\n")
}

// CodeBlockID returns the id of a code block whose
// opening fence is on the given zero-based body line.
func CodeBlockID(lineIndex int) string {
	return "code-block-" + strconv.Itoa(lineIndex)
}

// A Region is an interactive part of rendered output:
// an element with id ID whose copy control should copy Text.
// Regions let a viewer attach behavior to the markup without
// the renderer emitting any script.
type Region struct {
	ID   string `json:"id"`
	Lang string `json:"lang"`
	Text string `json:"text"`
}

func regions(blocks []Block) []Region {
	var list []Region
	for _, b := range blocks {
		if c, ok := b.(*CodeBlock); ok {
			list = append(list, Region{c.ID, c.Lang, c.Text})
		}
	}
	return list
}

const fenceMarker = "```"

// isFence reports whether s is a code fence line, "```" followed by an
// optional language tag, and returns the tag. Both the renderer and
// [Outline] identify fences with isFence.
func isFence(s line) (lang string, ok bool) {
	t := s.trimmed()
	if !strings.HasPrefix(t, fenceMarker) {
		return "", false
	}
	info := strings.Fields(strings.TrimLeft(t, "`"))
	if len(info) > 0 {
		lang = info[0]
	}
	return lang, true
}

// startFencedCodeBlock is a [starter] for a [CodeBlock].
func startFencedCodeBlock(p *parser, s line) bool {
	lang, ok := isFence(s)
	if !ok {
		return false
	}
	if lang == "" {
		lang = "text"
	}
	p.addBlock(&fenceBuilder{start: s.n, end: s.n, lang: lang})
	return true
}

// A fenceBuilder is a [builder] for a [CodeBlock].
// Lines inside the fence are kept verbatim; nothing else is recognized
// until the closing fence. An unclosed fence runs to the end of input.
type fenceBuilder struct {
	start int
	end   int
	lang  string
	text  []string
}

func (b *fenceBuilder) extend(p *parser, s line) (ok, done bool) {
	b.end = s.n
	if _, ok := isFence(s); ok {
		return true, true
	}
	b.text = append(b.text, s.text)
	return true, false
}

func (b *fenceBuilder) build(p *parser) Block {
	c := &CodeBlock{
		Position: Position{b.start, b.end},
		ID:       CodeBlockID(b.start),
		Lang:     b.lang,
		Text:     strings.Join(b.text, "\n"),
	}
	if p.Highlight {
		c.Highlighted, _ = highlight(c.Lang, c.Text)
	}
	return c
}
