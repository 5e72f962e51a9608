// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"regexp"
	"strings"
)

// An inlineRule is one span-level substitution.
// Rules are applied to the whole text one after another, in the order
// of inlineRules; each rule sees the markup emitted by the rules before it.
type inlineRule struct {
	name string
	re   *regexp.Regexp
	repl func(m []string) string

	// If skip is non-nil, a match starting at start in s
	// is left alone when skip(s, start) is true.
	skip func(s string, start int) bool
}

// inlineRules is the fixed rule order. Bold must precede italic so that
// "**" is never read as two italic markers, and the emphasis rules run
// before code so that "**`x`**" wraps the code span in bold.
var inlineRules = []inlineRule{
	{
		name: "bold",
		re:   regexp.MustCompile(`\*\*(.+?)\*\*`),
		repl: wrap("strong", "markdown-bold"),
	},
	{
		name: "italic",
		re:   regexp.MustCompile(`\*(.+?)\*`),
		repl: wrap("em", "markdown-italic"),
	},
	{
		name: "strikethrough",
		re:   regexp.MustCompile(`~~(.+?)~~`),
		repl: wrap("del", "markdown-strikethrough"),
	},
	{
		name: "code",
		re:   codeSpan,
		repl: wrap("code", "markdown-inline-code"),
	},
	{
		name: "link",
		re:   regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		repl: func(m []string) string {
			return `<a href="` + m[2] + `" class="markdown-link" target="_blank" rel="noopener noreferrer">` + m[1] + `</a>`
		},
		// ![alt](src) is an image; leave it for the image rule.
		skip: func(s string, start int) bool {
			return start > 0 && s[start-1] == '!'
		},
	},
	{
		name: "image",
		re:   regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`),
		repl: func(m []string) string {
			return `<img src="` + m[2] + `" alt="` + m[1] + `" class="markdown-image" />`
		},
	},
	{
		name: "highlight",
		re:   regexp.MustCompile(`==(.+?)==`),
		repl: wrap("mark", "markdown-highlight"),
	},
}

var codeSpan = regexp.MustCompile("`([^`]+)`")

// escapeCodeSpans HTML-escapes the contents of every `code` span in text,
// leaving the backticks in place for the code rule.
// No rule adds or removes backticks, so the spans found here
// are the spans the code rule wraps later.
func escapeCodeSpans(text string) string {
	return codeSpan.ReplaceAllStringFunc(text, htmlEscaper.Replace)
}

func wrap(tag, class string) func([]string) string {
	open := "<" + tag + ` class="` + class + `">`
	end := "</" + tag + ">"
	return func(m []string) string {
		return open + m[1] + end
	}
}

// apply rewrites every non-overlapping match of r in s, left to right.
func (r *inlineRule) apply(s string) string {
	matches := r.re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range matches {
		if r.skip != nil && r.skip(s, loc[0]) {
			continue
		}
		m := make([]string, len(loc)/2)
		for i := range m {
			if loc[2*i] >= 0 {
				m[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(r.repl(m))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// TransformInline converts span-level markup in text to HTML:
// **bold**, *italic*, ~~strikethrough~~, `code`, [label](target),
// ![alt](target), and ==highlight==.
//
// Each construct is resolved in a single non-greedy left-to-right pass,
// in that order. Unterminated markers are left as literal text.
// The contents of code spans are HTML-escaped. Other text is
// copied unchanged, including any HTML it contains; see [Parser.EscapeHTML].
func TransformInline(text string) string {
	var p Parser
	return p.inline(text)
}

func (p *Parser) inline(text string) string {
	if p.EscapeHTML {
		text = htmlEscaper.Replace(text)
	} else {
		text = escapeCodeSpans(text)
	}
	for i := range inlineRules {
		text = inlineRules[i].apply(text)
	}
	return text
}
