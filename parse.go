// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"golang.org/x/text/unicode/norm"
)

// A Parser is a Markdown-to-HTML converter.
// The zero value is ready to use and treats its input as trusted:
// HTML in the source passes through to the output.
//
// A Parser holds only options; its methods may be called concurrently.
type Parser struct {
	// EscapeHTML escapes HTML-significant characters in all leaf text
	// (paragraphs, headings, list items, quotes, table cells) before
	// inline markup is applied, so source text can never inject markup.
	EscapeHTML bool

	// Sanitize passes the rendered HTML through [Sanitize].
	Sanitize bool

	// Highlight renders fenced code with syntax highlighting spans.
	// The spans carry chroma class names; see [WriteHighlightCSS].
	Highlight bool

	// NormalizeUnicode converts input to Unicode normalization form NFC.
	NormalizeUnicode bool

	// YAMLFrontMatter makes [Parser.Parse] decode front matter
	// with [ParseYAMLFrontMatter] instead of [ExtractFrontMatter].
	YAMLFrontMatter bool
}

// A Block is a structural unit of a document:
// a [Heading], [CodeBlock], [Quote], [List], [Table],
// [ThematicBreak], or [Paragraph].
type Block interface {
	Block()
	Pos() Position
	printHTML(*printer)
}

// A Position records the zero-based first and last body lines of a block.
type Position struct {
	StartLine int
	EndLine   int
}

func (p Position) Pos() Position {
	return p
}

// A builder accumulates the lines of the single open block.
type builder interface {
	// extend offers the line s to the open block.
	// It reports whether the block consumed s,
	// and if so, whether s completed the block.
	extend(p *parser, s line) (ok, done bool)

	// build returns the finished block, or nil if there is nothing to emit.
	build(p *parser) Block
}

// A starter checks whether s starts a new block
// and, if so, opens or emits it and returns true.
type starter func(p *parser, s line) bool

// starters is the per-line priority order. A line that the open block
// does not consume is offered to each starter in turn.
var starters = []starter{
	startFencedCodeBlock,
	startHeading,
	startBlockQuote,
	startList,
	startTable,
	startThematicBreak,
	startBlank,
	startParagraph,
}

// parser is the state of a single parse.
type parser struct {
	*Parser
	open    builder // the open block, if any
	emitted []Block // blocks completed by the current line
}

// step advances the block state machine by one line and
// returns the blocks that the line completed, in order.
// Afterward p.open is the block left open by the line, if any.
func (p *parser) step(s line) []Block {
	p.emitted = nil
	if p.open != nil {
		if ok, done := p.open.extend(p, s); ok {
			if done {
				p.closeBlock()
			}
			return p.emitted
		}
	}
	for _, start := range starters {
		if start(p, s) {
			break
		}
	}
	return p.emitted
}

// finish closes any open block at end of input
// and returns the resulting block, if any.
func (p *parser) finish() []Block {
	p.emitted = nil
	p.closeBlock()
	return p.emitted
}

// closeBlock builds and emits the open block.
func (p *parser) closeBlock() {
	if p.open == nil {
		return
	}
	b := p.open
	p.open = nil
	if blk := b.build(p); blk != nil {
		p.emitted = append(p.emitted, blk)
	}
}

// addBlock closes the open block and makes b the open block.
func (p *parser) addBlock(b builder) {
	p.closeBlock()
	p.open = b
}

// doneBlock closes the open block and emits b,
// which needs no further lines.
func (p *parser) doneBlock(b Block) {
	p.closeBlock()
	p.emitted = append(p.emitted, b)
}

// blocks runs the state machine over lines.
func (p *Parser) blocks(lines []line) []Block {
	ps := &parser{Parser: p}
	var blocks []Block
	for _, s := range lines {
		blocks = append(blocks, ps.step(s)...)
	}
	return append(blocks, ps.finish()...)
}

// startBlank is a [starter] for a blank line, which ends the open block.
// Lists are the exception: they consume blank lines between items
// and so never reach startBlank.
func startBlank(p *parser, s line) bool {
	if !s.isBlank() {
		return false
	}
	p.closeBlock()
	return true
}

// Parse converts a complete document, including any front matter,
// and returns the result. Parse fails only when YAMLFrontMatter is set
// and the front matter is malformed.
func (p *Parser) Parse(document string) (*Document, error) {
	if p.NormalizeUnicode {
		document = norm.NFC.String(document)
	}
	var fm FrontMatter
	var body string
	if p.YAMLFrontMatter {
		var err error
		fm, body, err = ParseYAMLFrontMatter(document)
		if err != nil {
			return nil, err
		}
	} else {
		fm, body = ExtractFrontMatter(document)
	}
	doc := p.parseBody(body)
	doc.FrontMatter = fm
	return doc, nil
}

// Render converts a document body (without front matter) to HTML.
// It also returns the interactive regions of the output,
// one per fenced code block.
func (p *Parser) Render(body string) (html string, regions []Region) {
	if p.NormalizeUnicode {
		body = norm.NFC.String(body)
	}
	doc := p.parseBody(body)
	return doc.HTML, doc.Regions
}

// Render converts a document body to HTML using default options.
// The result is a sequence of block elements with no enclosing wrapper;
// an empty body yields an empty string.
func Render(body string) string {
	var p Parser
	html, _ := p.Render(body)
	return html
}

func (p *Parser) parseBody(body string) *Document {
	lines := splitLines(body)
	doc := &Document{
		Position:    Position{0, max(len(lines)-1, 0)},
		FrontMatter: FrontMatter{},
		Body:        body,
		Blocks:      p.blocks(lines),
		Outline:     outline(lines),
	}
	doc.Regions = regions(doc.Blocks)
	doc.HTML = ToHTML(doc)
	if p.Sanitize {
		doc.HTML = Sanitize(doc.HTML)
	}
	return doc
}
