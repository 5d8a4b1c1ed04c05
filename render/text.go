// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/perfcharts/benchrank/benchrank"
	"github.com/perfcharts/benchrank/internal/texttab"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Text renders a fixed-width text table.
type Text struct {
	// Header overrides DefaultHeader. It must have three entries.
	Header []string

	// Geomean adds a final row with the geometric means of the
	// throughputs and ratios.
	Geomean bool

	// Lang selects digit grouping for throughputs. The zero value
	// means English ("135,430,355").
	Lang language.Tag
}

// RenderTable writes the table with aligned columns.
func (t Text) RenderTable(w io.Writer, rows []benchrank.Row) error {
	lang := t.Lang
	if lang == language.Und {
		lang = language.English
	}
	p := message.NewPrinter(lang)

	var tab texttab.Table
	h := header(t.Header)
	tab.Row().Cell(h[0]).Cell(h[1], texttab.Right).Cell(h[2], texttab.Right)
	for _, row := range rows {
		tab.Row().
			Cell(row.Label).
			Cell(p.Sprintf("%d", row.Throughput), texttab.Right).
			Cell(p.Sprintf("%.3f", row.Ratio), texttab.Right)
	}
	if t.Geomean {
		if s, ok := benchrank.Summarize(rows); ok {
			tab.Row().
				Cell("geomean").
				Cell(p.Sprintf("%.0f", s.Throughput), texttab.Right).
				Cell(p.Sprintf("%.3f", s.Ratio), texttab.Right)
		}
	}
	return tab.Format(w)
}
