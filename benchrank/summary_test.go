// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Errorf("Summarize(nil) reported ok")
	}

	rows, err := Transform([]Record{{"a", 100}, {"b", 400}, {"c", 200}})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := Summarize(rows)
	if !ok {
		t.Fatal("Summarize reported !ok")
	}
	if want := 200.0; math.Abs(s.Throughput-want) > 1e-9 {
		t.Errorf("geomean throughput = %v, want %v", s.Throughput, want)
	}
	// Ratios are 1, 2 and 4.
	if want := 2.0; math.Abs(s.Ratio-want) > 1e-9 {
		t.Errorf("geomean ratio = %v, want %v", s.Ratio, want)
	}
}
