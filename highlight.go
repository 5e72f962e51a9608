// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
)

// codeFormatter emits class-based spans only; the enclosing
// <pre><code> is written by [CodeBlock.printHTML].
var codeFormatter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

// highlight returns code as highlighted HTML.
// It reports false if lang names no known lexer.
func highlight(lang, code string) (string, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}
	var buf strings.Builder
	if err := codeFormatter.Format(&buf, styles.Fallback, it); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WriteHighlightCSS writes the stylesheet for the classes used by
// highlighted code, using the named chroma style.
func WriteHighlightCSS(w io.Writer, style string) error {
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	return errors.Wrapf(codeFormatter.WriteCSS(w, s), "write %s stylesheet", style)
}
