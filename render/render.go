// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws ranked benchmark rows as tables and charts.
//
// Table renderers implement TableRenderer and chart renderers
// implement ChartRenderer. Both write a complete document to an
// io.Writer and never modify the rows they are given.
package render

import (
	"io"

	"github.com/perfcharts/benchrank/benchrank"
)

// Options configures a chart.
type Options struct {
	// Title is drawn above the chart.
	Title string `yaml:"title"`

	// AxisLabel names the axis holding the method labels.
	AxisLabel string `yaml:"axis_label"`

	// ValueLabel names the axis holding the throughputs.
	ValueLabel string `yaml:"value_label"`
}

// DefaultOptions are the options used for int-to-string conversion
// benchmarks.
var DefaultOptions = Options{
	Title:      "Conversion speed",
	AxisLabel:  "Method",
	ValueLabel: "int/s",
}

// WithDefaults returns o with every empty field taken from
// DefaultOptions.
func (o Options) WithDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultOptions.Title
	}
	if o.AxisLabel == "" {
		o.AxisLabel = DefaultOptions.AxisLabel
	}
	if o.ValueLabel == "" {
		o.ValueLabel = DefaultOptions.ValueLabel
	}
	return o
}

// DefaultHeader holds the column titles of a table: the method
// label, the rounded throughput and the speed ratio.
var DefaultHeader = []string{"Method", "int/s", "Speed ratio"}

// A TableRenderer writes rows as a table.
type TableRenderer interface {
	RenderTable(w io.Writer, rows []benchrank.Row) error
}

// A ChartRenderer writes rows as a chart.
type ChartRenderer interface {
	RenderChart(w io.Writer, rows []benchrank.Row, opts Options) error
}

func header(h []string) []string {
	if len(h) != len(DefaultHeader) {
		return DefaultHeader
	}
	return h
}

// reversed returns rows from slowest to fastest. Charts that stack
// categories bottom-up use it to put the fastest row on top.
func reversed(rows []benchrank.Row) []benchrank.Row {
	out := make([]benchrank.Row, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row
	}
	return out
}

// errWriter records the first error of writes to w. It serves
// drawing libraries that do not report write errors themselves.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
