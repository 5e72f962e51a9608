// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func FuzzRender(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for _, md := range a.Files {
			if strings.HasSuffix(md.Name, ".md") {
				f.Add(decode(string(md.Data)))
			}
		}
	}
	f.Add(outlineDoc)
	f.Fuzz(func(t *testing.T, s string) {
		html := Render(s)
		for _, e := range Outline(s) {
			if !strings.Contains(html, `data-heading-id="`+e.ID+`"`) {
				t.Fatalf("input %q: outline entry %s has no rendered heading\n%s", s, e.ID, html)
			}
		}
		if again := Render(s); again != html {
			t.Fatalf("input %q: Render is not deterministic", s)
		}
		fm, body := ExtractFrontMatter(s)
		if fm == nil {
			t.Fatalf("input %q: nil front matter", s)
		}
		if !strings.HasSuffix(s, body) {
			t.Fatalf("input %q: body %q is not a suffix of the document", s, body)
		}
	})
}
