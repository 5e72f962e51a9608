// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFrontMatter(t *testing.T) {
	doc := "---\ntitle: \"Hi\"\ndraft: true\norder: 3\n---\n# Hi\n"
	fm, body := ExtractFrontMatter(doc)
	assert.Equal(t, FrontMatter{"title": "Hi", "draft": true, "order": 3}, fm)
	assert.Equal(t, "# Hi\n", body)
	assert.Equal(t, "Hi", fm.String("title"))
	assert.True(t, fm.Bool("draft"))
	assert.Equal(t, 3, fm.Int("order"))
	assert.Equal(t, "", fm.String("missing"))
}

func TestExtractFrontMatterAbsent(t *testing.T) {
	for _, doc := range []string{
		"",
		"# Title\n",
		"---",
		"---\ntitle: x\n",
		" ---\ntitle: x\n---\n",
		"text\n---\na: b\n---\n",
	} {
		fm, body := ExtractFrontMatter(doc)
		require.NotNil(t, fm, "doc %q", doc)
		assert.Empty(t, fm, "doc %q", doc)
		assert.Equal(t, doc, body)
	}
}

func TestExtractFrontMatterValues(t *testing.T) {
	doc := strings.Join([]string{
		"---",
		"single: 'one'",
		"mismatch: \"two'",
		"url: https://example.com:8080/x",
		"no colon here",
		": empty key",
		"  spaced  :   value  ",
		"neg: -1",
		"big: 99999999999999999999999",
		"False: False",
		"---",
		"body",
	}, "\n")
	fm, body := ExtractFrontMatter(doc)
	assert.Equal(t, "body", body)
	assert.Equal(t, FrontMatter{
		"single":   "one",
		"mismatch": "\"two'",
		"url":      "https://example.com:8080/x",
		"spaced":   "value",
		"neg":      "-1",
		"big":      "99999999999999999999999",
		"False":    "False",
	}, fm)
}

func TestExtractFrontMatterEmptyBlock(t *testing.T) {
	fm, body := ExtractFrontMatter("---\n---\ntext")
	assert.Empty(t, fm)
	assert.Equal(t, "text", body)
}

func TestExtractFrontMatterCRLF(t *testing.T) {
	fm, body := ExtractFrontMatter("---\r\na: b\r\n---\r\nx\r\n")
	assert.Equal(t, FrontMatter{"a": "b"}, fm)
	assert.Equal(t, "x\r\n", body)
}

func TestParseYAMLFrontMatter(t *testing.T) {
	doc := "---\ntitle: Hi\ntags: [a, b]\ncount: 2\n---\n# Hi\n"
	fm, body, err := ParseYAMLFrontMatter(doc)
	require.NoError(t, err)
	assert.Equal(t, "Hi", fm.String("title"))
	assert.Equal(t, 2, fm.Int("count"))
	assert.Equal(t, []any{"a", "b"}, fm["tags"])
	assert.Equal(t, "# Hi", strings.TrimSpace(body))
}

func TestParseYAMLFrontMatterMalformed(t *testing.T) {
	_, _, err := ParseYAMLFrontMatter("---\ntitle: [unclosed\n---\nbody\n")
	assert.Error(t, err)
}

func TestParseYAMLFrontMatterAbsent(t *testing.T) {
	fm, body, err := ParseYAMLFrontMatter("# Just a body\n")
	require.NoError(t, err)
	assert.Empty(t, fm)
	assert.Equal(t, "# Just a body", strings.TrimSpace(body))
}
