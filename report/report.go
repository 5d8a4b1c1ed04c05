// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report runs the ranking transform and hands its rows to a
// table and chart sink.
package report

import (
	"fmt"
	"io"

	"github.com/perfcharts/benchrank/benchrank"
	"github.com/perfcharts/benchrank/render"
)

// A Sink displays ranked rows.
type Sink interface {
	RenderTable(rows []benchrank.Row) error
	RenderChart(rows []benchrank.Row, opts render.Options) error
}

// Draw ranks records with the default rename rules and renders the
// table and then the chart to s.
//
// If records are invalid, Draw renders nothing and returns an error
// wrapping benchrank.ErrInvalidInput.
func Draw(s Sink, records []benchrank.Record, opts render.Options) error {
	return DrawWith(s, &benchrank.Ranker{Rules: benchrank.DefaultRules}, records, opts)
}

// DrawWith is like Draw but ranks records with k.
func DrawWith(s Sink, k *benchrank.Ranker, records []benchrank.Record, opts render.Options) error {
	rows, err := k.Transform(records)
	if err != nil {
		return err
	}
	if err := s.RenderTable(rows); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	if err := s.RenderChart(rows, opts.WithDefaults()); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// Writer is a Sink that writes the table and then the chart to W.
// A nil Table or Chart is skipped.
type Writer struct {
	W     io.Writer
	Table render.TableRenderer
	Chart render.ChartRenderer
}

// RenderTable writes rows with w.Table.
func (w *Writer) RenderTable(rows []benchrank.Row) error {
	if w.Table == nil {
		return nil
	}
	return w.Table.RenderTable(w.W, rows)
}

// RenderChart writes rows with w.Chart.
func (w *Writer) RenderChart(rows []benchrank.Row, opts render.Options) error {
	if w.Chart == nil {
		return nil
	}
	return w.Chart.RenderChart(w.W, rows, opts)
}
