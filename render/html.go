// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"
	"strconv"

	"github.com/google/safehtml/template"
	"github.com/perfcharts/benchrank/benchrank"
)

var htmlTemplate = template.Must(template.New("table").Parse(`<table class="benchrank">
<thead>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Label}}</td><td>{{.Throughput}}</td><td>{{.Ratio}}</td></tr>
{{- end}}
</tbody>
</table>
`))

// HTML renders rows as an HTML table fragment. Labels are escaped.
type HTML struct {
	// Header overrides DefaultHeader. It must have three entries.
	Header []string
}

type htmlRow struct {
	Label      string
	Throughput int64
	Ratio      string
}

// RenderTable writes a <table> element with a header row.
func (h HTML) RenderTable(w io.Writer, rows []benchrank.Row) error {
	data := struct {
		Header []string
		Rows   []htmlRow
	}{Header: header(h.Header)}
	for _, row := range rows {
		data.Rows = append(data.Rows, htmlRow{
			Label:      row.Label,
			Throughput: row.Throughput,
			Ratio:      strconv.FormatFloat(row.Ratio, 'g', -1, 64),
		})
	}
	return htmlTemplate.Execute(w, data)
}
