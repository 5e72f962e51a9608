// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"fmt"
	"strconv"
)

// A List is a [Block] representing a bulleted or numbered list.
// Items hold a single line of text each; lists do not nest.
type List struct {
	Position
	Ordered bool
	Start   int // number of the first item of an ordered list
	Items   []*Item
}

// An Item is a single list item.
type Item struct {
	Position
	Text string // inline-transformed
}

func (*List) Block() {}
func (*Item) Block() {}

func (b *List) printHTML(p *printer) {
	if b.Ordered {
		p.html(`<ol class="markdown-list"`)
		if b.Start != 1 {
			fmt.Fprintf(p, ` start="%d"`, b.Start)
		}
		p.html(">\n")
	} else {
		p.html(`<ul class="markdown-list">`, "\n")
	}
	for _, c := range b.Items {
		c.printHTML(p)
	}
	if b.Ordered {
		p.html("</ol>\n")
	} else {
		p.html("</ul>\n")
	}
}

func (b *Item) printHTML(p *printer) {
	p.html(`<li class="markdown-list-item">`, b.Text, "</li>\n")
}

// trimListMarker trims a list item marker from s:
// "- ", "* ", or "+ " for a bulleted item,
// or a decimal number followed by ". " for a numbered item.
// Leading indentation is ignored.
func trimListMarker(s line) (text string, ordered bool, num int, ok bool) {
	t := trimLeftSpaceTab(s.text)
	if len(t) >= 2 && (t[0] == '-' || t[0] == '*' || t[0] == '+') && isListSpace(t[1]) {
		return trimSpaceTab(t[2:]), false, 0, true
	}
	i := 0
	for i < len(t) && isDigit(t[i]) {
		i++
	}
	if i == 0 || i+1 >= len(t) || t[i] != '.' || !isListSpace(t[i+1]) {
		return "", false, 0, false
	}
	num, err := strconv.Atoi(t[:i])
	if err != nil {
		num = 1
	}
	return trimSpaceTab(t[i+2:]), true, num, true
}

func isListSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// startList is a [starter] for a [List].
// It is reached when no list is open or when the open list is of
// the other kind, in which case that list is closed first.
func startList(p *parser, s line) bool {
	text, ordered, num, ok := trimListMarker(s)
	if !ok {
		return false
	}
	b := &listBuilder{start: s.n, ordered: ordered, num: num}
	b.addItem(p, s.n, text)
	p.addBlock(b)
	return true
}

// A listBuilder is a [builder] for a [List].
// It consumes items of its own kind and blank lines between them.
type listBuilder struct {
	start   int
	ordered bool
	num     int
	items   []*Item
}

func (b *listBuilder) addItem(p *parser, n int, text string) {
	b.items = append(b.items, &Item{Position{n, n}, p.inline(text)})
}

func (b *listBuilder) extend(p *parser, s line) (ok, done bool) {
	if s.isBlank() {
		return true, false
	}
	text, ordered, _, ok := trimListMarker(s)
	if !ok || ordered != b.ordered {
		return false, false
	}
	b.addItem(p, s.n, text)
	return true, false
}

func (b *listBuilder) build(p *parser) Block {
	// The list ends at its last item, not at any trailing blank lines.
	end := b.items[len(b.items)-1].EndLine
	return &List{Position{b.start, end}, b.ordered, b.num, b.items}
}
