// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import "bytes"

type printer struct {
	bytes.Buffer
}

// html writes markup verbatim.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.WriteString(s)
	}
}

// text writes s with HTML-significant characters escaped.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.Buffer, s)
	}
}

// ToHTML returns the HTML for b. Leaf text in blocks produced by a
// [Parser] has already been through inline transformation,
// so ToHTML only serializes.
func ToHTML(b Block) string {
	var p printer
	b.printHTML(&p)
	return p.String()
}
