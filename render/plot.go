// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/perfcharts/benchrank/benchrank"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot renders a horizontal bar chart of throughputs as an image,
// fastest method on top.
type Plot struct {
	// Format is the image format: "png", "svg" or "pdf".
	// The default is "png".
	Format string

	// Width and Height give the image size. If zero, the width is
	// 8 inches and the height grows with the number of rows.
	Width, Height vg.Length

	// Color fills the bars. If nil, a blue is used.
	Color color.Color
}

var barColor = color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}

// RenderChart draws the chart and writes it in p.Format.
func (p Plot) RenderChart(w io.Writer, rows []benchrank.Row, opts Options) error {
	format := p.Format
	switch format {
	case "":
		format = "png"
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported plot format %q", p.Format)
	}
	opts = opts.WithDefaults()

	pl := plot.New()
	pl.Title.Text = opts.Title
	pl.Y.Label.Text = opts.AxisLabel
	pl.X.Label.Text = opts.ValueLabel
	pl.X.Min = 0

	if len(rows) > 0 {
		rows = reversed(rows)
		values := make(plotter.Values, len(rows))
		labels := make([]string, len(rows))
		for i, row := range rows {
			values[i] = row.Raw
			labels[i] = row.Label
		}
		bars, err := plotter.NewBarChart(values, vg.Points(12))
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = barColor
		if p.Color != nil {
			bars.Color = p.Color
		}
		pl.Add(plotter.NewGrid(), bars)
		pl.NominalY(labels...)
	}

	width, height := p.Width, p.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = vg.Length(len(rows))*vg.Points(18) + 1.5*vg.Inch
	}
	wt, err := pl.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
