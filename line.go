// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import "strings"

// A line is a single input line of a document body.
type line struct {
	n    int    // zero-based index within the body
	text string // line text, without the line ending
}

// splitLines splits body into lines, accepting \n and \r\n line endings.
// The renderer and the outline both number lines using splitLines,
// so a line index means the same thing to both of them.
// A final line ending does not start another line.
func splitLines(body string) []line {
	body = strings.TrimSuffix(body, "\n")
	if body == "" {
		return nil
	}
	body = strings.ReplaceAll(body, "\x00", "\uFFFD")
	var lines []line
	for n := 0; ; n++ {
		text, rest, more := strings.Cut(body, "\n")
		lines = append(lines, line{n, strings.TrimSuffix(text, "\r")})
		if !more {
			break
		}
		body = rest
	}
	return lines
}

func (s line) trimmed() string {
	return strings.TrimSpace(s.text)
}

func (s line) isBlank() bool {
	return s.trimmed() == ""
}

func trimLeftSpaceTab(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func trimSpaceTab(s string) string {
	s = trimLeftSpaceTab(s)
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[:j]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
