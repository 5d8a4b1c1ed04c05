// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchjson reads benchmark results in the JSON format written
// by Google Benchmark's --benchmark_format=json.
//
// Only the "name" and "items_per_second" fields of each entry in the
// "benchmarks" array are required. The "context" object, if present,
// is decoded into a benchrank.Context.
package benchjson

import (
	"fmt"
	"io"

	"github.com/perfcharts/benchrank/benchrank"
	"github.com/tidwall/gjson"
)

// Options controls which entries of a document become records.
type Options struct {
	// Aggregate, if non-empty, selects the aggregate entries with
	// this aggregate_name (for example "mean" or "median") and
	// drops the per-repetition entries. The record name of a
	// selected entry is its run_name.
	Aggregate string
}

// Read reads an entire document from r and decodes it.
func Read(r io.Reader, opts Options) (*benchrank.Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts)
}

// Parse decodes a benchmark results document.
//
// If the document is not JSON, has no benchmarks array, or an entry
// lacks a string name or a numeric items_per_second, Parse returns
// an error wrapping benchrank.ErrInvalidInput.
func Parse(data []byte, opts Options) (*benchrank.Set, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", benchrank.ErrInvalidInput)
	}
	doc := gjson.ParseBytes(data)
	benchmarks := doc.Get("benchmarks")
	if !benchmarks.IsArray() {
		return nil, fmt.Errorf("%w: missing benchmarks array", benchrank.ErrInvalidInput)
	}

	p := &benchrank.Set{Context: parseContext(doc.Get("context"))}
	for i, b := range benchmarks.Array() {
		if opts.Aggregate != "" {
			if b.Get("run_type").String() != "aggregate" || b.Get("aggregate_name").String() != opts.Aggregate {
				continue
			}
		}
		rec, err := parseRecord(i, b, opts)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

func parseRecord(i int, b gjson.Result, opts Options) (benchrank.Record, error) {
	name := b.Get("name")
	if opts.Aggregate != "" && b.Get("run_name").Type == gjson.String {
		name = b.Get("run_name")
	}
	if name.Type != gjson.String {
		return benchrank.Record{}, &benchrank.InputError{Index: i, Reason: "missing name"}
	}
	ips := b.Get("items_per_second")
	switch {
	case !ips.Exists():
		return benchrank.Record{}, &benchrank.InputError{Index: i, Name: name.String(), Reason: "missing items_per_second"}
	case ips.Type != gjson.Number:
		return benchrank.Record{}, &benchrank.InputError{Index: i, Name: name.String(), Reason: fmt.Sprintf("items_per_second is not a number: %s", ips.Raw)}
	}
	return benchrank.Record{Name: name.String(), Throughput: ips.Float()}, nil
}

func parseContext(c gjson.Result) benchrank.Context {
	if !c.IsObject() {
		return benchrank.Context{}
	}
	return benchrank.Context{
		Date:       c.Get("date").String(),
		HostName:   c.Get("host_name").String(),
		Executable: c.Get("executable").String(),
		NumCPUs:    int(c.Get("num_cpus").Int()),
		MHzPerCPU:  int(c.Get("mhz_per_cpu").Int()),
		CPUScaling: c.Get("cpu_scaling_enabled").Bool(),
		BuildType:  c.Get("library_build_type").String(),
	}
}
