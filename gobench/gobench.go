// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gobench reads the Go benchmark format, as printed by
// "go test -bench", into benchmark records.
//
// Each distinct benchmark name becomes one record. When a benchmark
// was run more than once (for example with -count), its measurements
// are combined into their median.
package gobench

import (
	"fmt"
	"io"
	"strings"

	"github.com/perfcharts/benchrank/benchrank"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchproc"
	"golang.org/x/perf/benchunit"
)

// Options controls how results are converted to throughputs.
type Options struct {
	// Unit is the measurement to read, such as "ns/op" or "MB/s".
	// Time-per-operation units are inverted into operations per
	// second; rate units ending in "/s" are used as they are.
	// Units are tidied the same way the reader tidies them, so
	// "ns/op" and "sec/op" are equivalent. The default is "sec/op".
	Unit string

	// Filter, if non-empty, keeps only results matching this
	// benchfilter query, such as ".name:FormatInt" or
	// "/size:(8 OR 16)".
	Filter string

	// Log, if non-nil, receives one line for each result the
	// filter drops, with the filter's reason when it gives one.
	Log io.Writer
}

// Read reads benchmark results from r. fileName is used in error
// messages.
//
// A malformed benchmark line yields an error wrapping
// benchrank.ErrInvalidInput. Results without a measurement in the
// requested unit are skipped.
func Read(r io.Reader, fileName string, opts Options) (*benchrank.Set, error) {
	unit := opts.Unit
	if unit == "" {
		unit = "sec/op"
	}
	_, unit = benchunit.Tidy(1, unit)
	rate := strings.HasSuffix(unit, "/s")
	if !rate && unit != "sec/op" {
		return nil, fmt.Errorf("unit %q is neither a time per operation nor a rate", opts.Unit)
	}

	var filter *benchproc.Filter
	if opts.Filter != "" {
		var err error
		if filter, err = benchproc.NewFilter(opts.Filter); err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
	}

	set := new(benchrank.Set)
	var names []string
	samples := make(map[string][]float64)

	br := benchfmt.NewReader(r, fileName)
	for br.Scan() {
		switch rec := br.Result().(type) {
		case *benchfmt.SyntaxError:
			return nil, fmt.Errorf("%w: %v", benchrank.ErrInvalidInput, rec)
		case *benchfmt.Result:
			if set.Context.CPU == "" {
				set.Context.CPU = rec.GetConfig("cpu")
			}
			if set.Context.Executable == "" {
				set.Context.Executable = rec.GetConfig("pkg")
			}
			if filter != nil {
				if ok, err := filter.Apply(rec); !ok {
					if opts.Log != nil {
						reason := "no match"
						if err != nil {
							reason = err.Error()
						}
						fmt.Fprintf(opts.Log, "%s: dropped %s: %s\n", fileName, rec.Name, reason)
					}
					continue
				}
			}
			val, ok := rec.Value(unit)
			if !ok {
				continue
			}
			name := displayName(rec.Name)
			if _, ok := samples[name]; !ok {
				names = append(names, name)
			}
			samples[name] = append(samples[name], val)
		}
	}
	if err := br.Err(); err != nil {
		return nil, err
	}

	for _, name := range names {
		s := benchmath.NewSample(samples[name], &benchmath.DefaultThresholds)
		center := benchmath.AssumeNothing.Summary(s, 0.95).Center
		if !rate {
			center = 1 / center
		}
		set.Records = append(set.Records, benchrank.Record{Name: name, Throughput: center})
	}
	return set, nil
}

// displayName returns the full benchmark name without its GOMAXPROCS
// suffix.
func displayName(n benchfmt.Name) string {
	base, parts := n.Parts()
	var b strings.Builder
	b.Write(base)
	for _, p := range parts {
		if p[0] == '-' {
			continue
		}
		b.Write(p)
	}
	return b.String()
}
