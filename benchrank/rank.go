// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"fmt"
	"math"
	"sort"
)

// A Ranker transforms Records into ranked Rows using a rename table.
//
// The zero Ranker leaves names unchanged.
type Ranker struct {
	Rules []Rule
}

// Transform ranks records using DefaultRules. See Ranker.Transform.
func Transform(records []Record) ([]Row, error) {
	r := Ranker{Rules: DefaultRules}
	return r.Transform(records)
}

// Transform returns one Row per record, ordered by descending
// throughput. Records with equal throughput keep their input order.
//
// If any record is malformed, Transform returns an error wrapping
// ErrInvalidInput and no rows. An empty input yields an empty result.
func (k *Ranker) Transform(records []Record) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	if len(records) == 0 {
		return rows, nil
	}

	max := 0.0
	for i, rec := range records {
		if err := check(i, rec); err != nil {
			return nil, err
		}
		max = math.Max(max, rec.Throughput)
	}

	for _, rec := range records {
		rows = append(rows, Row{
			Label:      Rename(rec.Name, k.Rules),
			Throughput: int64(math.Round(rec.Throughput)),
			Raw:        rec.Throughput,
			Ratio:      max / rec.Throughput,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Raw > rows[j].Raw
	})
	return rows, nil
}

func check(i int, rec Record) error {
	bad := func(format string, args ...interface{}) error {
		return &InputError{Index: i, Name: rec.Name, Reason: fmt.Sprintf(format, args...)}
	}
	switch t := rec.Throughput; {
	case rec.Name == "":
		return bad("missing name")
	case math.IsNaN(t) || math.IsInf(t, 0):
		return bad("throughput is not finite: %v", t)
	case t <= 0:
		return bad("throughput must be > 0, got %v", t)
	case t >= math.MaxInt64:
		return bad("throughput out of range: %v", t)
	}
	return nil
}
