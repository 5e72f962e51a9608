// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdview converts Markdown documents to HTML for a document viewer.
//
// A document is processed in three independent passes:
// [ExtractFrontMatter] splits off a leading "---" metadata block,
// [Render] converts the remaining body to a sequence of HTML blocks,
// and [Outline] lists the body's headings for navigation.
// [Parser.Parse] runs all three.
//
// Every rendered heading carries id and data-heading-id attributes equal
// to the ID of the matching [OutlineEntry], so a viewer can scroll to a
// heading chosen from the outline. IDs are derived from the heading's line
// number in the body ("heading-12"), not from its text.
//
// The dialect is deliberately small: ATX headings, fenced code, block
// quotes, flat bulleted and numbered lists, pipe tables, thematic breaks,
// and paragraphs, with bold, italic, strikethrough, code, link, image,
// and highlight spans. Blocks do not nest. Conversion never fails;
// malformed input degrades to the nearest recognized construct.
package mdview

// A Document is a parsed document.
type Document struct {
	Position    `json:"-"`
	FrontMatter FrontMatter    `json:"frontMatter"`
	Body        string         `json:"-"`
	Blocks      []Block        `json:"-"`
	HTML        string         `json:"html"`
	Outline     []OutlineEntry `json:"outline"`
	Regions     []Region       `json:"regions"`
}

func (*Document) Block() {}

func (b *Document) printHTML(p *printer) {
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
}
