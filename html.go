// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlEscaper = strings.NewReplacer(
	"\"", "&quot;",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
)

// Sanitize filters rendered markup through an allow-list policy.
// It removes scripts, event handlers, and other active content, but keeps
// the markdown-* classes, element ids, and data attributes that the viewer
// uses to style the document and to navigate to headings.
func Sanitize(html string) string {
	return sanitizePolicy.Sanitize(html)
}

var sanitizePolicy = newSanitizePolicy()

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "span", "mark", "del", "button")
	p.AllowAttrs("class").Globally()
	p.AllowDataAttributes()
	p.AllowAttrs("type").OnElements("button")
	p.AllowAttrs("start").OnElements("ol")
	p.AllowAttrs("align").OnElements("th", "td")

	// Links keep the target and rel the inline renderer gives them.
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	return p
}
