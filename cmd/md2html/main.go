// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML.
//
// Usage:
//
//	md2html [-highlight] [-escape] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML fragments to standard output.
// Front matter at the start of a document is not printed.
//
// The -highlight flag renders fenced code with syntax highlighting classes
// (see "mdview css" for a matching stylesheet).
// The -escape flag escapes HTML in the document text.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"rsc.io/mdview"
)

var (
	highlightFlag = flag.Bool("highlight", false, "syntax-highlight fenced code")
	escapeFlag    = flag.Bool("escape", false, "escape HTML in document text")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: md2html [-highlight] [-escape] [file...]\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	p := &mdview.Parser{
		Highlight:  *highlightFlag,
		EscapeHTML: *escapeFlag,
	}
	args := flag.Args()
	if len(args) == 0 {
		do(p, os.Stdin)
	} else {
		for _, arg := range args {
			f, err := os.Open(arg)
			if err != nil {
				log.Fatal(err)
			}
			do(p, f)
			f.Close()
		}
	}
}

func do(p *mdview.Parser, f *os.File) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.WriteString(toHTML(p, data))
}

// toHTML converts a Markdown document to an HTML fragment.
func toHTML(p *mdview.Parser, md []byte) string {
	_, body := mdview.ExtractFrontMatter(string(md))
	html, _ := p.Render(body)
	return html
}
