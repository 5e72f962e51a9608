// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import "testing"

var inlineTests = []struct {
	in   string
	want string
}{
	{"plain text", "plain text"},
	{"**b**", `<strong class="markdown-bold">b</strong>`},
	{"*i*", `<em class="markdown-italic">i</em>`},
	{"**b** and *i*", `<strong class="markdown-bold">b</strong> and <em class="markdown-italic">i</em>`},
	{"~~s~~", `<del class="markdown-strikethrough">s</del>`},
	{"`x < y`", `<code class="markdown-inline-code">x &lt; y</code>`},
	{"`<b>x</b>`", `<code class="markdown-inline-code">&lt;b&gt;x&lt;/b&gt;</code>`},
	{"`a & b` & c", `<code class="markdown-inline-code">a &amp; b</code> & c`},
	{"`a*b*c`", `<code class="markdown-inline-code">a<em class="markdown-italic">b</em>c</code>`},
	{"**`code`**", `<strong class="markdown-bold"><code class="markdown-inline-code">code</code></strong>`},
	{"[a](b)", `<a href="b" class="markdown-link" target="_blank" rel="noopener noreferrer">a</a>`},
	{"![a](b.png)", `<img src="b.png" alt="a" class="markdown-image" />`},
	{"![](b.png)", `<img src="b.png" alt="" class="markdown-image" />`},
	{"==m==", `<mark class="markdown-highlight">m</mark>`},
	{"a ** b", "a ** b"},
	{"a * b", "a * b"},
	{"~~open", "~~open"},
	{"`open", "`open"},
	{"[label](", "[label]("},
	{"==open", "==open"},
	{"<i>raw</i>", "<i>raw</i>"},
}

func TestTransformInline(t *testing.T) {
	for _, tt := range inlineTests {
		if out := TransformInline(tt.in); out != tt.want {
			t.Errorf("TransformInline(%q):\nhave %q\nwant %q", tt.in, out, tt.want)
		}
	}
}

func TestInlineEscapeHTML(t *testing.T) {
	p := &Parser{EscapeHTML: true}
	tests := []struct {
		in   string
		want string
	}{
		{"<i>raw</i>", "&lt;i&gt;raw&lt;/i&gt;"},
		{"`<b>`", `<code class="markdown-inline-code">&lt;b&gt;</code>`},
		{"`a & b`", `<code class="markdown-inline-code">a &amp; b</code>`},
		{`"q" & 'a'`, "&quot;q&quot; &amp; &#39;a&#39;"},
		{"**x**", `<strong class="markdown-bold">x</strong>`},
	}
	for _, tt := range tests {
		if out := p.inline(tt.in); out != tt.want {
			t.Errorf("inline(%q) with EscapeHTML:\nhave %q\nwant %q", tt.in, out, tt.want)
		}
	}
}

func TestInlineRuleOrder(t *testing.T) {
	want := []string{"bold", "italic", "strikethrough", "code", "link", "image", "highlight"}
	if len(inlineRules) != len(want) {
		t.Fatalf("len(inlineRules) = %d, want %d", len(inlineRules), len(want))
	}
	for i, r := range inlineRules {
		if r.name != want[i] {
			t.Errorf("inlineRules[%d] = %s, want %s", i, r.name, want[i])
		}
	}
}
