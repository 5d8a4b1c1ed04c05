// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/perfcharts/benchrank/benchrank"
)

// Bars renders a compact SVG chart of speed relative to the fastest
// method: each bar's length is 1/Ratio of the full width.
type Bars struct {
	// Width is the width of the longest bar in pixels.
	// The default is 400.
	Width int

	// BarHeight is the height of one bar in pixels.
	// The default is 16.
	BarHeight int
}

const (
	barsLeft   = 200 // room for labels
	barsMargin = 20
)

// RenderChart writes an SVG document with one bar per row.
func (b Bars) RenderChart(w io.Writer, rows []benchrank.Row, o Options) error {
	o = o.WithDefaults()
	vw, bh := b.Width, b.BarHeight
	if vw <= 0 {
		vw = 400
	}
	if bh <= 0 {
		bh = 16
	}
	vspace := bh + bh/3
	top := barsMargin + 2*bh
	width := barsLeft + vw + 80
	height := top + len(rows)*vspace + barsMargin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Gstyle(fmt.Sprintf("font-size:%dpx;font-family:sans-serif", bh*3/4))
	canvas.Text(barsMargin, barsMargin+bh, o.Title, "font-size:150%")
	for i, row := range rows {
		y := top + i*vspace
		bw := int(float64(vw)/row.Ratio + 0.5)
		canvas.Text(barsLeft-10, y+bh*3/4, row.Label, "text-anchor:end")
		canvas.Rect(barsLeft, y, bw, bh, "fill-opacity:0.6;fill:steelblue")
		canvas.Text(barsLeft+bw+5, y+bh*3/4, fmt.Sprintf("%.2fx", row.Ratio), "fill:gray")
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}
