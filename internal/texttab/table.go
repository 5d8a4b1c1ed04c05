// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	// Sep separates adjacent columns. If empty, two spaces are used.
	Sep string

	rows [][]textCell
}

type textCell struct {
	value     string
	alignment align
}

// A CellOption configures a single cell.
type CellOption func(c *textCell)

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center CellOption = func(c *textCell) { c.alignment = alignCenter }
	Right  CellOption = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s with spaces to width w according to a.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case alignRight:
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row. If no row has been
// started, Cell starts one.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	return t
}

// Rows returns the number of rows in t.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Format lays out table t and writes it to w. Trailing spaces are
// trimmed from every line.
func (t *Table) Format(w io.Writer) error {
	sep := t.Sep
	if sep == "" {
		sep = "  "
	}

	var widths []int
	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString(sep)
			}
			line.WriteString(c.alignment.pad(c.value, widths[i]))
		}
		bw.WriteString(strings.TrimRight(line.String(), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
