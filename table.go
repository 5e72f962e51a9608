// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import "strings"

// A Table is a [Block] representing a pipe table.
// The first row is the header; a delimiter row such as "|---|:-:|"
// is not a row but sets column alignment.
type Table struct {
	Position
	Header []string   // inline-transformed header cells
	Align  []string   // "left", "center", "right", or "" per column
	Rows   [][]string // inline-transformed body cells
}

func (*Table) Block() {}

func (t *Table) printHTML(p *printer) {
	p.html(`<table class="markdown-table">`, "\n")
	p.html("<thead>\n<tr>\n")
	for i, cell := range t.Header {
		p.html(`<th class="markdown-table-header"`, t.alignAttr(i), ">", cell, "</th>\n")
	}
	p.html("</tr>\n</thead>\n")
	p.html("<tbody>\n")
	for _, row := range t.Rows {
		p.html("<tr>\n")
		for i, cell := range row {
			p.html(`<td class="markdown-table-cell"`, t.alignAttr(i), ">", cell, "</td>\n")
		}
		p.html("</tr>\n")
	}
	p.html("</tbody>\n")
	p.html("</table>\n")
}

func (t *Table) alignAttr(col int) string {
	if col < len(t.Align) && t.Align[col] != "" {
		return ` align="` + t.Align[col] + `"`
	}
	return ""
}

// isTableRow reports whether s is a table row:
// a trimmed line that starts and ends with '|'.
func isTableRow(s line) bool {
	t := s.trimmed()
	return len(t) >= 2 && t[0] == '|' && t[len(t)-1] == '|'
}

// isTableDelim reports whether the table row s is a delimiter row.
func isTableDelim(s line) bool {
	return strings.Contains(s.text, "---")
}

// tableCells splits a table row into trimmed cells.
// The empty cells outside the boundary pipes are dropped.
// An escaped pipe "\|" is a literal pipe inside a cell.
func tableCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = row[:len(row)-1]
	}
	var cells []string
	start := 0
	unesc := nop
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' {
			i++
			if i < len(row) && row[i] == '|' {
				// Need to rewrite escaped pipe to pipe in cell.
				unesc = tableUnescape
			}
			continue
		}
		if c == '|' {
			cells = append(cells, unesc(strings.TrimSpace(row[start:i])))
			start = i + 1
			unesc = nop
		}
	}
	return append(cells, unesc(strings.TrimSpace(row[start:])))
}

func nop(text string) string {
	return text
}

func tableUnescape(text string) string {
	return strings.ReplaceAll(text, `\|`, "|")
}

// tableAlign returns the alignment named by a delimiter cell like ":--:".
func tableAlign(cell string) string {
	if cell == "" {
		return ""
	}
	l := cell[0] == ':'
	r := cell[len(cell)-1] == ':'
	switch {
	case l && r:
		return "center"
	case l:
		return "left"
	case r:
		return "right"
	}
	return ""
}

// startTable is a [starter] for a [Table].
// A delimiter row with no table open is dropped.
func startTable(p *parser, s line) bool {
	if !isTableRow(s) {
		return false
	}
	if isTableDelim(s) {
		p.closeBlock()
		return true
	}
	b := &tableBuilder{start: s.n, end: s.n}
	b.header = b.cells(p, s)
	p.addBlock(b)
	return true
}

// A tableBuilder is a [builder] for a [Table].
// Any line that is not a table row ends the table.
type tableBuilder struct {
	start  int
	end    int
	header []string
	align  []string
	rows   [][]string
}

func (b *tableBuilder) cells(p *parser, s line) []string {
	cells := tableCells(s.text)
	for i, c := range cells {
		cells[i] = p.inline(c)
	}
	return cells
}

func (b *tableBuilder) extend(p *parser, s line) (ok, done bool) {
	if !isTableRow(s) {
		return false, false
	}
	b.end = s.n
	if isTableDelim(s) {
		if b.align == nil {
			for _, c := range tableCells(s.text) {
				b.align = append(b.align, tableAlign(c))
			}
		}
		return true, false
	}
	b.rows = append(b.rows, b.cells(p, s))
	return true, false
}

func (b *tableBuilder) build(p *parser) Block {
	return &Table{Position{b.start, b.end}, b.header, b.align, b.rows}
}
