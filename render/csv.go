// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/perfcharts/benchrank/benchrank"
)

// CSV renders rows as comma-separated values. Ratios keep full
// precision.
type CSV struct {
	// Header overrides DefaultHeader. It must have three entries.
	Header []string
}

// RenderTable writes a header record and one record per row.
func (c CSV) RenderTable(w io.Writer, rows []benchrank.Row) error {
	cw := csv.NewWriter(w)
	cw.Write(header(c.Header))
	for _, row := range rows {
		cw.Write([]string{
			row.Label,
			strconv.FormatInt(row.Throughput, 10),
			strconv.FormatFloat(row.Ratio, 'g', -1, 64),
		})
	}
	cw.Flush()
	return cw.Error()
}
