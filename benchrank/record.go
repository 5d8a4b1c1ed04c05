// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrank ranks benchmark results by throughput.
//
// A set of Records, typically the items-per-second results of one
// benchmark run, is turned into a sequence of Rows: each record's
// name is rewritten to a display label, its throughput is compared
// against the fastest record in the set, and the rows are ordered
// from fastest to slowest.
//
// The transform is a pure function of its input. Loading records
// (see packages benchjson and gobench) and drawing the resulting
// table (see packages render and report) are left to other packages.
package benchrank

import (
	"errors"
	"fmt"
)

// A Record is a single named benchmark measurement as reported by a
// benchmark harness.
type Record struct {
	// Name is the raw benchmark name, such as "fmt_format_int".
	Name string

	// Throughput is the number of items processed per second.
	// It must be > 0.
	Throughput float64
}

// A Row is the ranked, display-ready form of one Record.
type Row struct {
	// Label is the normalized method name, such as "fmt::format_int".
	Label string

	// Throughput is Raw rounded to the nearest integer.
	Throughput int64

	// Raw is the unrounded throughput of the Record.
	Raw float64

	// Ratio is the throughput of the fastest row in the set divided
	// by this row's throughput. The fastest row has Ratio 1; every
	// other row has Ratio >= 1.
	Ratio float64
}

// A Set is the records of one benchmark run together with the
// context they were collected in.
type Set struct {
	Context Context
	Records []Record
}

// Context describes the machine and build a set of results came
// from. Every field is optional.
type Context struct {
	Date       string
	HostName   string
	Executable string
	CPU        string
	NumCPUs    int
	MHzPerCPU  int
	CPUScaling bool
	BuildType  string
}

// IsZero reports whether c carries no information.
func (c Context) IsZero() bool {
	return c == Context{}
}

// ErrInvalidInput is the error class of malformed input: a record
// without a name, or with a throughput that is not a positive finite
// number. Errors returned for such input satisfy
// errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// An InputError reports a malformed record.
type InputError struct {
	Index  int    // Index of the record in the input sequence
	Name   string // Raw name of the record, if any
	Reason string
}

func (e *InputError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid input: record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid input: record %d (%s): %s", e.Index, e.Name, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
