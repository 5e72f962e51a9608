// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\x00b", []string{"a\uFFFDb"}},
	}
	for _, tt := range tests {
		var have []string
		for i, s := range splitLines(tt.in) {
			if s.n != i {
				t.Errorf("splitLines(%q)[%d].n = %d", tt.in, i, s.n)
			}
			have = append(have, s.text)
		}
		if !reflect.DeepEqual(have, tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.in, have, tt.want)
		}
	}
}

// blockKinds describes blocks as "Kind start-end" strings.
func blockKinds(blocks []Block) []string {
	var list []string
	for _, b := range blocks {
		pos := b.Pos()
		kind := strings.TrimPrefix(reflect.TypeOf(b).String(), "*mdview.")
		list = append(list, fmt.Sprintf("%s %d-%d", kind, pos.StartLine, pos.EndLine))
	}
	return list
}

func TestStep(t *testing.T) {
	p := &parser{Parser: &Parser{}}
	steps := []struct {
		text string
		emit []string
		open string
	}{
		{"intro", nil, "*mdview.paraBuilder"},
		{"more", nil, "*mdview.paraBuilder"},
		{"# Head", []string{"Paragraph 0-1", "Heading 2-2"}, "<nil>"},
		{"- a", nil, "*mdview.listBuilder"},
		{"", nil, "*mdview.listBuilder"},
		{"- b", nil, "*mdview.listBuilder"},
		{"```go", []string{"List 3-5"}, "*mdview.fenceBuilder"},
		{"# not a heading", nil, "*mdview.fenceBuilder"},
		{"```", []string{"CodeBlock 6-8"}, "<nil>"},
		{"> q", nil, "*mdview.quoteBuilder"},
		{"", []string{"Quote 9-9"}, "<nil>"},
		{"| a |", nil, "*mdview.tableBuilder"},
		{"|---|", nil, "*mdview.tableBuilder"},
		{"---", []string{"Table 11-12", "ThematicBreak 13-13"}, "<nil>"},
	}
	for i, st := range steps {
		emit := blockKinds(p.step(line{i, st.text}))
		assert.Equal(t, st.emit, emit, "step %d %q", i, st.text)
		assert.Equal(t, st.open, fmt.Sprintf("%T", p.open), "open after step %d %q", i, st.text)
	}
	assert.Empty(t, p.finish())
}

func TestFinishUnterminatedFence(t *testing.T) {
	var p Parser
	blocks := p.blocks(splitLines("```py\nx = 1\n# y\n"))
	require.Len(t, blocks, 1)
	c, ok := blocks[0].(*CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "py", c.Lang)
	assert.Equal(t, "x = 1\n# y", c.Text)
	assert.Equal(t, Position{0, 2}, c.Position)
}

func TestRenderEmpty(t *testing.T) {
	for _, body := range []string{"", "\n", "\n\n  \n"} {
		assert.Equal(t, "", Render(body), "Render(%q)", body)
	}
}

func TestListSwitchKinds(t *testing.T) {
	var p Parser
	blocks := p.blocks(splitLines("- a\n1. b\n- c\n"))
	assert.Equal(t, []string{"List 0-0", "List 1-1", "List 2-2"}, blockKinds(blocks))
	assert.False(t, blocks[0].(*List).Ordered)
	assert.True(t, blocks[1].(*List).Ordered)
	assert.False(t, blocks[2].(*List).Ordered)
}

func TestQuoteEndsAtBlank(t *testing.T) {
	var p Parser
	blocks := p.blocks(splitLines("> a\n> b\n\n> c\n"))
	require.Len(t, blocks, 2)
	assert.Equal(t, "a\nb", blocks[0].(*Quote).Text)
	assert.Equal(t, "c", blocks[1].(*Quote).Text)
}

func TestRenderRegions(t *testing.T) {
	var p Parser
	html, regions := p.Render("text\n\n```sh\necho \"hi\"\n```\n```\nplain\n```\n")
	assert.Equal(t, []Region{
		{ID: "code-block-2", Lang: "sh", Text: `echo "hi"`},
		{ID: "code-block-5", Lang: "text", Text: "plain"},
	}, regions)
	for _, r := range regions {
		assert.Contains(t, html, `id="`+r.ID+`"`)
		assert.Contains(t, html, `data-copy-target="`+r.ID+`"`)
	}
	assert.Contains(t, html, `data-code="echo &quot;hi&quot;"`)
}

func TestParse(t *testing.T) {
	var p Parser
	doc, err := p.Parse("---\ntitle: Notes\n---\n# One\ntext\n## Two\n")
	require.NoError(t, err)
	assert.Equal(t, "Notes", doc.FrontMatter.String("title"))
	assert.Equal(t, "# One\ntext\n## Two\n", doc.Body)
	assert.Equal(t, []OutlineEntry{
		{ID: "heading-0", Title: "One", Level: 1, LineIndex: 0},
		{ID: "heading-2", Title: "Two", Level: 2, LineIndex: 2},
	}, doc.Outline)
	assert.Equal(t, Render(doc.Body), doc.HTML)
}

func TestParseYAML(t *testing.T) {
	p := Parser{YAMLFrontMatter: true}
	doc, err := p.Parse("---\ntags:\n  - a\n---\nbody\n")
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, doc.FrontMatter["tags"])
	assert.Contains(t, doc.HTML, `<p class="markdown-paragraph">body</p>`)

	_, err = p.Parse("---\ntags: [a\n---\nbody\n")
	assert.Error(t, err)
}

func TestNormalizeUnicode(t *testing.T) {
	decomposed := "# Cafe\u0301\n"
	p := Parser{NormalizeUnicode: true}
	html, _ := p.Render(decomposed)
	assert.Contains(t, html, ">Caf\u00e9</h1>")

	var raw Parser
	html, _ = raw.Render(decomposed)
	assert.Contains(t, html, ">Cafe\u0301</h1>")
}

func TestHighlight(t *testing.T) {
	p := Parser{Highlight: true}
	html, _ := p.Render("```go\nfunc main() {}\n```\n")
	assert.Contains(t, html, `<code class="language-go"><span`)
	assert.NotContains(t, html, "<pre class=")

	html, _ = p.Render("```nosuchlanguage\na < b\n```\n")
	assert.Contains(t, html, `<code class="language-nosuchlanguage">a &lt; b</code>`)
}

func TestWriteHighlightCSS(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteHighlightCSS(&buf, "monokai"))
	assert.Contains(t, buf.String(), ".chroma")
}

func TestSanitize(t *testing.T) {
	p := Parser{Sanitize: true}
	html, _ := p.Render("# Title\n\n<script>alert(1)</script> <b onclick=\"x()\">bold</b>\n\n```go\nx\n```\n")
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "onclick")
	assert.Contains(t, html, `id="heading-0"`)
	assert.Contains(t, html, `data-heading-id="heading-0"`)
	assert.Contains(t, html, `class="markdown-heading markdown-h1"`)
	assert.Contains(t, html, `data-copy-target="code-block-4"`)
}

func TestSanitizeLinks(t *testing.T) {
	p := Parser{Sanitize: true}
	html, _ := p.Render("see [x](http://e.com) and [y](https://e.com/a)\n")
	assert.Contains(t, html, `href="http://e.com"`)
	assert.Contains(t, html, `href="https://e.com/a"`)
	assert.Equal(t, 2, strings.Count(html, `target="_blank"`))
	assert.Equal(t, 2, strings.Count(html, `rel="noopener noreferrer"`))
	assert.NotContains(t, html, "nofollow")

	html = Sanitize(`<a href="http://e.com" target="_top" rel="opener">z</a>`)
	assert.NotContains(t, html, "_top")
	assert.NotContains(t, html, "opener")
}
