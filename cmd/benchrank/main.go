// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchrank ranks benchmark throughputs and renders them as a
// comparison table and chart.
//
// Usage:
//
//	benchrank [flags] [inputs...]
//
// Each input is either a Google Benchmark JSON report
// (--benchmark_format=json) or the output of "go test -bench". If
// no inputs are given, benchrank reads standard input. Results from
// all inputs are ranked together, fastest first, and each method is
// shown with its rounded throughput and how many times slower it is
// than the fastest one:
//
//	Method                 int/s  Speed ratio
//	fmt::format_int  135,430,355        1.000
//	boost::format      5,623,971       24.081
//
// Go benchmarks can be selected with -filter, which takes a
// benchfilter query (see golang.org/x/perf/cmd/benchfilter), and
// -unit selects the measurement to rank, such as MB/s.
//
// Benchmark names are shortened by an ordered table of rename rules.
// The default table turns "std_", "fmt_" and "boost_" prefixes into
// C++ namespaces and "_compile" and "_runtime" suffixes into "[c]"
// and "[r]".
//
// # Output
//
// Without -o, benchrank writes the table to standard output. With
// -o, it writes a table and a chart file named "table.<ext>" and
// "chart.<ext>" to the destination, which is either a local
// directory or a Cloud Storage location gs://bucket/prefix.
//
// The -table flag selects the table format: text, csv or html. The
// -chart flag selects the chart: png, svg or pdf draw a bar chart
// image, html an interactive page, bars a compact SVG of speed
// ratios, and none disables the chart.
//
// # Configuration
//
// The -config flag names a YAML file:
//
//	title: Conversion speed (linux)
//	axis_label: Method
//	value_label: int/s
//	rules:
//	  - pattern: std_
//	    replacement: "std::"
//
// If rules is present it replaces the default rename table. Flags
// override values from the file.
//
// # Archive
//
// With -archive driver:dsn, every ranking is also saved in a SQL
// database under its title, for example
// "sqlite3:reports.db" or "mysql:root:@cloudsql(project:region:instance)/reports".
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/perfcharts/benchrank/archive"
	"github.com/perfcharts/benchrank/benchjson"
	"github.com/perfcharts/benchrank/benchrank"
	"github.com/perfcharts/benchrank/gobench"
	"github.com/perfcharts/benchrank/hostinfo"
	"github.com/perfcharts/benchrank/publish"
	"github.com/perfcharts/benchrank/render"
	"github.com/perfcharts/benchrank/report"
)

func main() {
	log.SetPrefix("benchrank: ")
	log.SetFlags(0)

	if err := benchrankMain(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func benchrankMain(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchrank", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "Usage: benchrank [flags] [inputs...]\n")
		flags.PrintDefaults()
	}
	var (
		flagFormat    = flags.String("format", "auto", "input `format`: auto, json or go")
		flagUnit      = flags.String("unit", "", "read throughput from `unit` of Go benchmarks (default sec/op)")
		flagFilter    = flags.String("filter", "", "keep only Go benchmarks matching `query`")
		flagAggregate = flags.String("aggregate", "", "rank the Google Benchmark aggregate `name`, such as mean or median")
		flagConfig    = flags.String("config", "", "read titles and rename rules from YAML `file`")
		flagTitle     = flags.String("title", "", "chart `title`")
		flagAxis      = flags.String("axis", "", "method axis `label`")
		flagTable     = flags.String("table", "text", "table `format`: text, csv or html")
		flagChart     = flags.String("chart", "png", "chart `format`: png, svg, pdf, html, bars or none")
		flagOut       = flags.String("o", "", "publish table and chart to `dest` (directory or gs://bucket/prefix)")
		flagKey       = flags.String("key", "", "Cloud Storage service account key `file`")
		flagArchive   = flags.String("archive", "", "save the ranking in database `driver:dsn`")
		flagHost      = flags.Bool("host", false, "describe this machine when inputs lack a context")
		flagGeomean   = flags.Bool("geomean", false, "add a geomean row to text tables")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		return err
	}
	if *flagTitle != "" {
		cfg.Title = *flagTitle
	}
	if *flagAxis != "" {
		cfg.AxisLabel = *flagAxis
	}
	opts := cfg.Options.WithDefaults()

	table, tableExt, err := tableRenderer(*flagTable, cfg.Header, *flagGeomean)
	if err != nil {
		return err
	}
	chart, chartExt, err := chartRenderer(*flagChart)
	if err != nil {
		return err
	}

	set, err := readInputs(flags.Args(), *flagFormat, gobench.Options{Unit: *flagUnit, Filter: *flagFilter, Log: wErr}, benchjson.Options{Aggregate: *flagAggregate})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *flagHost {
		set.Context = hostinfo.Fill(set.Context, hostinfo.Describe(ctx))
	}

	var sink report.Sink
	var artifacts *report.Artifacts
	if *flagOut == "" {
		if *flagTable == "text" {
			writeContext(w, set.Context)
		}
		sink = &report.Writer{W: w, Table: table}
	} else {
		artifacts = new(report.Artifacts)
		artifacts.AddTable("table."+tableExt, table)
		if chart != nil {
			artifacts.AddChart("chart."+chartExt, chart)
		}
		sink = artifacts
	}
	saved := &capture{Sink: sink}
	if err := report.DrawWith(saved, cfg.ranker(), set.Records, opts); err != nil {
		return err
	}

	if artifacts != nil {
		p, err := publish.Open(ctx, *flagOut, *flagKey)
		if err != nil {
			return err
		}
		defer p.Close()
		if err := artifacts.Publish(ctx, p); err != nil {
			return err
		}
		for _, f := range artifacts.Files() {
			fmt.Fprintf(wErr, "wrote %s (%d bytes)\n", f.Name, len(f.Data))
		}
	}

	if *flagArchive != "" {
		id, err := save(ctx, *flagArchive, &archive.Report{
			Title:   opts.Title,
			Context: set.Context,
			Rows:    saved.rows,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(wErr, "saved report %d\n", id)
	}
	return nil
}

// capture records the rows handed to a Sink.
type capture struct {
	report.Sink
	rows []benchrank.Row
}

func (c *capture) RenderTable(rows []benchrank.Row) error {
	c.rows = rows
	return c.Sink.RenderTable(rows)
}

func tableRenderer(format string, header []string, geomean bool) (render.TableRenderer, string, error) {
	switch format {
	case "text":
		return render.Text{Header: header, Geomean: geomean}, "txt", nil
	case "csv":
		return render.CSV{Header: header}, "csv", nil
	case "html":
		return render.HTML{Header: header}, "html", nil
	}
	return nil, "", fmt.Errorf("unknown table format %q", format)
}

func chartRenderer(format string) (render.ChartRenderer, string, error) {
	switch format {
	case "png", "svg", "pdf":
		return render.Plot{Format: format}, format, nil
	case "html":
		return render.ECharts{}, "html", nil
	case "bars":
		return render.Bars{}, "svg", nil
	case "none":
		return nil, "", nil
	}
	return nil, "", fmt.Errorf("unknown chart format %q", format)
}

// readInputs reads and merges every input. The context of the
// result is that of the first input that has one.
func readInputs(paths []string, format string, gopts gobench.Options, jopts benchjson.Options) (*benchrank.Set, error) {
	switch format {
	case "auto", "json", "go":
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	all := new(benchrank.Set)
	for _, path := range paths {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, err
		}

		f := format
		if f == "auto" {
			f = "go"
			if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '{' {
				f = "json"
			}
		}
		var set *benchrank.Set
		if f == "json" {
			set, err = benchjson.Parse(data, jopts)
			if err != nil {
				err = fmt.Errorf("%s: %w", path, err)
			}
		} else {
			// Syntax errors carry the file name and line.
			set, err = gobench.Read(bytes.NewReader(data), path, gopts)
		}
		if err != nil {
			return nil, err
		}

		if all.Context.IsZero() {
			all.Context = set.Context
		}
		all.Records = append(all.Records, set.Records...)
	}
	return all, nil
}

// writeContext prints the non-empty fields of c as key: value lines,
// followed by a blank line.
func writeContext(w io.Writer, c benchrank.Context) {
	if c.IsZero() {
		return
	}
	kv := func(key, val string) {
		if val != "" {
			fmt.Fprintf(w, "%s: %s\n", key, val)
		}
	}
	num := func(key string, n int) {
		if n != 0 {
			kv(key, fmt.Sprint(n))
		}
	}
	kv("date", c.Date)
	kv("host", c.HostName)
	kv("executable", c.Executable)
	kv("cpu", c.CPU)
	num("cpus", c.NumCPUs)
	num("mhz", c.MHzPerCPU)
	if c.CPUScaling {
		kv("cpu-scaling", "enabled")
	}
	kv("build", c.BuildType)
	fmt.Fprintln(w)
}

func save(ctx context.Context, target string, r *archive.Report) (int64, error) {
	driver, dsn, ok := strings.Cut(target, ":")
	if !ok || driver == "" || dsn == "" {
		return 0, fmt.Errorf("-archive %q: want driver:dsn", target)
	}
	db, err := archive.OpenSQL(driver, dsn)
	if err != nil {
		return 0, fmt.Errorf("opening archive: %w", err)
	}
	defer db.Close()
	return db.Save(ctx, r)
}
