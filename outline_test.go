// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"reflect"
	"strings"
	"testing"
)

const outlineDoc = `# Intro
text
## Setup
` + "```sh" + `
# comment, not a heading
` + "```" + `
### Details
#### Deep
##### Deeper
###### Deepest
#
## Setup
`

func TestOutline(t *testing.T) {
	want := []OutlineEntry{
		{ID: "heading-0", Title: "Intro", Level: 1, LineIndex: 0},
		{ID: "heading-2", Title: "Setup", Level: 2, LineIndex: 2},
		{ID: "heading-6", Title: "Details", Level: 3, LineIndex: 6},
		{ID: "heading-7", Title: "Deep", Level: 4, LineIndex: 7},
		{ID: "heading-11", Title: "Setup", Level: 2, LineIndex: 11},
	}
	have := Outline(outlineDoc)
	if !reflect.DeepEqual(have, want) {
		t.Errorf("Outline:\nhave %+v\nwant %+v", have, want)
	}
	if again := Outline(outlineDoc); !reflect.DeepEqual(again, have) {
		t.Errorf("Outline is not idempotent:\nfirst  %+v\nsecond %+v", have, again)
	}
}

func TestOutlineEmpty(t *testing.T) {
	if list := Outline(""); len(list) != 0 {
		t.Errorf("Outline(\"\") = %+v, want empty", list)
	}
	if list := Outline("no headings\n- here\n"); len(list) != 0 {
		t.Errorf("Outline without headings = %+v, want empty", list)
	}
}

func TestOutlineIDsMatchRender(t *testing.T) {
	html := Render(outlineDoc)
	for _, e := range Outline(outlineDoc) {
		attr := `id="` + e.ID + `" data-heading-id="` + e.ID + `"`
		if !strings.Contains(html, attr) {
			t.Errorf("Render output lacks %s", attr)
		}
	}
	// Headings deeper than the outline still render with ids.
	for _, id := range []string{"heading-8", "heading-9"} {
		if !strings.Contains(html, `data-heading-id="`+id+`"`) {
			t.Errorf("Render output lacks heading %s", id)
		}
	}
	if strings.Contains(html, "heading-4") {
		t.Errorf("fenced comment rendered as heading:\n%s", html)
	}
}

func TestOutlineUnterminatedFence(t *testing.T) {
	doc := "# A\n```\n# B\n"
	list := Outline(doc)
	if len(list) != 1 || list[0].Title != "A" {
		t.Errorf("Outline(%q) = %+v, want only A", doc, list)
	}
}

func TestHeadingID(t *testing.T) {
	if id := HeadingID(12); id != "heading-12" {
		t.Errorf("HeadingID(12) = %q", id)
	}
	if id := CodeBlockID(3); id != "code-block-3" {
		t.Errorf("CodeBlockID(3) = %q", id)
	}
}
