// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/perfcharts/benchrank/benchrank"
	"github.com/perfcharts/benchrank/publish"
	"github.com/perfcharts/benchrank/render"
)

// A File is one rendered artifact.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Artifacts is a Sink that renders each of its tables and charts into
// a named in-memory file.
type Artifacts struct {
	tables []namedTable
	charts []namedChart
	files  []File
}

type namedTable struct {
	name string
	r    render.TableRenderer
}

type namedChart struct {
	name string
	r    render.ChartRenderer
}

// AddTable arranges for rows to be rendered by r into the file name.
func (a *Artifacts) AddTable(name string, r render.TableRenderer) {
	a.tables = append(a.tables, namedTable{name, r})
}

// AddChart arranges for rows to be rendered by r into the file name.
func (a *Artifacts) AddChart(name string, r render.ChartRenderer) {
	a.charts = append(a.charts, namedChart{name, r})
}

// RenderTable renders rows with every table added by AddTable.
func (a *Artifacts) RenderTable(rows []benchrank.Row) error {
	for _, t := range a.tables {
		var buf bytes.Buffer
		if err := t.r.RenderTable(&buf, rows); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
		a.add(t.name, buf.Bytes())
	}
	return nil
}

// RenderChart renders rows with every chart added by AddChart.
func (a *Artifacts) RenderChart(rows []benchrank.Row, opts render.Options) error {
	for _, c := range a.charts {
		var buf bytes.Buffer
		if err := c.r.RenderChart(&buf, rows, opts); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		a.add(c.name, buf.Bytes())
	}
	return nil
}

func (a *Artifacts) add(name string, data []byte) {
	f := File{Name: name, ContentType: ContentType(name), Data: data}
	for i := range a.files {
		if a.files[i].Name == name {
			a.files[i] = f
			return
		}
	}
	a.files = append(a.files, f)
}

// Files returns the rendered files in the order they were first
// rendered.
func (a *Artifacts) Files() []File {
	return a.files
}

// Publish puts every rendered file to p.
func (a *Artifacts) Publish(ctx context.Context, p publish.Publisher) error {
	for _, f := range a.files {
		if err := p.Put(ctx, f.Name, f.ContentType, f.Data); err != nil {
			return fmt.Errorf("publishing %s: %w", f.Name, err)
		}
	}
	return nil
}

var contentTypes = map[string]string{
	".txt":  "text/plain; charset=utf-8",
	".csv":  "text/csv; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
}

// ContentType returns the MIME type of an artifact named name.
func ContentType(name string) string {
	if t, ok := contentTypes[path.Ext(name)]; ok {
		return t
	}
	return "application/octet-stream"
}
