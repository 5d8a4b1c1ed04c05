// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary condenses a ranked set into geometric means.
type Summary struct {
	// Throughput is the geometric mean of the rows' raw throughputs.
	Throughput float64

	// Ratio is the geometric mean of the rows' speed ratios.
	Ratio float64
}

// Summarize returns the geometric means of rows. It reports false if
// rows is empty or the means are undefined.
func Summarize(rows []Row) (Summary, bool) {
	if len(rows) == 0 {
		return Summary{}, false
	}
	raws := make([]float64, len(rows))
	ratios := make([]float64, len(rows))
	for i, row := range rows {
		raws[i], ratios[i] = row.Raw, row.Ratio
	}
	s := Summary{
		Throughput: stats.GeoMean(raws),
		Ratio:      stats.GeoMean(ratios),
	}
	if math.IsNaN(s.Throughput) || math.IsNaN(s.Ratio) {
		return Summary{}, false
	}
	return s, true
}
