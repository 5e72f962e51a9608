// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdview

import (
	"reflect"
	"testing"
)

var tableCellsTests = []struct {
	row   string
	cells []string
}{
	{"||", []string{""}},
	{"|x|", []string{"x"}},
	{"| |", []string{""}},
	{"| | |", []string{"", ""}},
	{"| | Foo | Bar |", []string{"", "Foo", "Bar"}},
	{"|          | Foo      | Bar      |", []string{"", "Foo", "Bar"}},
	{"  | a | b |  ", []string{"a", "b"}},
	{`| x\|y | z |`, []string{"x|y", "z"}},
	{`| x\\|y |`, []string{`x\\`, "y"}},
	{`| a\|b\|c |`, []string{"a|b|c"}},
	{`| end\|`, []string{"end|"}},
}

func TestTableCells(t *testing.T) {
	for _, tt := range tableCellsTests {
		cells := tableCells(tt.row)
		if !reflect.DeepEqual(cells, tt.cells) {
			t.Errorf("tableCells(%#q) = %q, want %q", tt.row, cells, tt.cells)
		}
	}
}

func TestTableAlign(t *testing.T) {
	testCases := []struct {
		cell string
		want string
	}{
		{"", ""},
		{"---", ""},
		{":---", "left"},
		{"---:", "right"},
		{":---:", "center"},
		{":", "center"},
	}
	for _, tc := range testCases {
		if a := tableAlign(tc.cell); a != tc.want {
			t.Errorf("tableAlign(%q) = %q, want %q", tc.cell, a, tc.want)
		}
	}
}

func TestIsTableRow(t *testing.T) {
	testCases := []struct {
		text string
		row  bool
	}{
		{"|", false},
		{"||", true},
		{"| a |", true},
		{"  | a |  ", true},
		{"| a", false},
		{"a |", false},
		{"a | b", false},
	}
	for _, tc := range testCases {
		if row := isTableRow(line{0, tc.text}); row != tc.row {
			t.Errorf("isTableRow(%q) = %v, want %v", tc.text, row, tc.row)
		}
	}
}
