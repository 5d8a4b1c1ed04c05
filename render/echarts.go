// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/perfcharts/benchrank/benchrank"
)

// ECharts renders an interactive HTML page holding a bar chart of
// throughputs, fastest method first.
type ECharts struct {
	// Width and Height are CSS sizes of the chart. The defaults
	// are "900px" and "500px".
	Width, Height string
}

// RenderChart writes a standalone HTML page holding the chart.
func (e ECharts) RenderChart(w io.Writer, rows []benchrank.Row, o Options) error {
	o = o.WithDefaults()
	width, height := e.Width, e.Height
	if width == "" {
		width = "900px"
	}
	if height == "" {
		height = "500px"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     width,
			Height:    height,
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.AxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.ValueLabel}),
	)

	labels := make([]string, len(rows))
	data := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
		data[i] = opts.BarData{Name: row.Label, Value: row.Throughput}
	}
	bar.SetXAxis(labels).AddSeries(o.ValueLabel, data)
	return bar.Render(w)
}
