// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
)

// FrontMatter is the metadata block at the start of a document.
// Values produced by [ExtractFrontMatter] are bool, int, or string.
type FrontMatter map[string]any

// String returns the string value for key, or "" if there is none.
func (fm FrontMatter) String(key string) string {
	s, _ := fm[key].(string)
	return s
}

// Bool returns the boolean value for key, or false if there is none.
func (fm FrontMatter) Bool(key string) bool {
	b, _ := fm[key].(bool)
	return b
}

// Int returns the integer value for key, or 0 if there is none.
func (fm FrontMatter) Int(key string) int {
	n, _ := fm[key].(int)
	return n
}

const frontMatterDelim = "---"

// ExtractFrontMatter splits a leading front matter block from document.
//
// The block must start on the first line with a line consisting of exactly
// "---" and end with the next such line. Each line inside is split on its
// first colon into a key and a value; lines without a colon or with an
// empty key are ignored. Values "true" and "false" become bools, values of
// only decimal digits become ints, and anything else is a string with one
// pair of matching surrounding quotes removed.
//
// If document does not start with a complete front matter block,
// ExtractFrontMatter returns an empty FrontMatter and document unchanged.
// The returned FrontMatter is never nil.
func ExtractFrontMatter(document string) (FrontMatter, string) {
	fm := FrontMatter{}
	first, rest, ok := strings.Cut(document, "\n")
	if !ok || strings.TrimSuffix(first, "\r") != frontMatterDelim {
		return fm, document
	}

	var meta []string
	for {
		text, next, more := strings.Cut(rest, "\n")
		if strings.TrimSuffix(text, "\r") == frontMatterDelim {
			rest = next
			break
		}
		if !more {
			// No closing delimiter: not front matter after all.
			return fm, document
		}
		meta = append(meta, strings.TrimSuffix(text, "\r"))
		rest = next
	}

	for _, s := range meta {
		key, value, ok := strings.Cut(s, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fm[key] = frontMatterValue(strings.TrimSpace(value))
	}
	return fm, rest
}

// frontMatterValue classifies a trimmed front matter value.
func frontMatterValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if isDigits(s) {
		// Digit runs too long for an int stay strings.
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// ParseYAMLFrontMatter is like [ExtractFrontMatter] but decodes the block
// as YAML (between "---" lines), TOML (between "+++" lines),
// or JSON (between ";;;" lines). Values keep the types the decoder
// assigns them. Unlike ExtractFrontMatter it reports malformed metadata
// as an error.
func ParseYAMLFrontMatter(document string) (FrontMatter, string, error) {
	fm := FrontMatter{}
	body, err := frontmatter.Parse(strings.NewReader(document), &fm)
	if err != nil {
		return FrontMatter{}, "", errors.Wrap(err, "parse front matter")
	}
	if fm == nil {
		fm = FrontMatter{}
	}
	return fm, string(body), nil
}
