// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/perfcharts/benchrank/archive"
	"github.com/perfcharts/benchrank/benchrank"
	"github.com/perfcharts/benchrank/internal/diff"
)

func TestText(t *testing.T) {
	golden(t, "small", "small.json")
	golden(t, "itoa", "itoa.txt")
}

func TestCSV(t *testing.T) {
	golden(t, "smallCSV", "-table", "csv", "small.json")
	golden(t, "smallCSV", "-format", "json", "-table", "csv", "small.json")
}

func TestConfig(t *testing.T) {
	// An empty rules list disables renaming.
	golden(t, "norename", "-config", "norename.yaml", "-table", "csv", "small.json")
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var got, gotErr bytes.Buffer
	t.Logf("benchrank %s", strings.Join(args, " "))
	if err := benchrankMain(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}
	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("%s differs (-want +got):\n%s", wantPath, d)
	}
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var w, wErr bytes.Buffer
	err = benchrankMain(&w, &wErr, args)
	return w.String(), wErr.String(), err
}

func TestInvalidInput(t *testing.T) {
	stdout, _, err := run(t, "testdata/bad.json")
	if !errors.Is(err, benchrank.ErrInvalidInput) {
		t.Fatalf("got %v, want invalid input", err)
	}
	if !strings.Contains(err.Error(), "record 1 (fmt_format_int)") {
		t.Errorf("error %q does not name the record", err)
	}
	if stdout != "" {
		t.Errorf("rendered output for invalid input:\n%s", stdout)
	}
}

func TestBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-table", "xml", "testdata/small.json"},
		{"-chart", "gif", "testdata/small.json"},
		{"-format", "yaml", "testdata/small.json"},
		{"-config", "testdata/missing.yaml", "testdata/small.json"},
		{"-archive", "sqlite3", "testdata/small.json"},
		{"-nosuchflag"},
	} {
		if _, _, err := run(t, args...); err == nil {
			t.Errorf("benchrank %s: want error", strings.Join(args, " "))
		}
	}
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := run(t, "-o", dir, "-table", "html", "-chart", "bars", "-title", "Linux", "testdata/small.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "wrote table.html") || !strings.Contains(stderr, "wrote chart.svg") {
		t.Errorf("stderr = %q", stderr)
	}

	table, err := os.ReadFile(filepath.Join(dir, "table.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(table), "<td>fmt::format_int</td>") {
		t.Errorf("table.html lacks first row:\n%s", table)
	}
	chart, err := os.ReadFile(filepath.Join(dir, "chart.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(chart), "Linux") || !strings.Contains(string(chart), "4.01x") {
		t.Errorf("chart.svg lacks title or ratio:\n%s", chart)
	}
}

func TestPublishNoChart(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := run(t, "-o", dir, "-chart", "none", "testdata/small.json"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "table.txt" {
		t.Errorf("published %v, want only table.txt", entries)
	}
}

func TestArchive(t *testing.T) {
	file := filepath.Join(t.TempDir(), "reports.db")
	_, stderr, err := run(t, "-archive", "sqlite3:"+file, "-title", "linux", "testdata/small.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "saved report 1") {
		t.Errorf("stderr = %q", stderr)
	}

	db, err := archive.OpenSQL("sqlite3", file)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	r, err := db.Latest(context.Background(), "linux")
	if err != nil {
		t.Fatal(err)
	}
	if r.Context.HostName != "juno" || len(r.Rows) != 3 || r.Rows[0].Label != "fmt::format_int" {
		t.Errorf("archived report = %+v", r)
	}
}

func TestHost(t *testing.T) {
	stdout, _, err := run(t, "-host", "-format", "go", "testdata/itoa.txt")
	if err != nil {
		t.Fatal(err)
	}
	// The input's cpu is kept and the rest describes this machine.
	if !strings.Contains(stdout, "cpu: AMD Ryzen 7 1700 Eight-Core Processor\n") {
		t.Errorf("input cpu was replaced:\n%s", stdout)
	}
	if !strings.Contains(stdout, "cpus: ") {
		t.Errorf("no cpu count:\n%s", stdout)
	}
}

func TestFilter(t *testing.T) {
	stdout, stderr, err := run(t, "-filter", ".name:FormatInt OR .name:Sprintf", "testdata/itoa.txt")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stdout, "Append") || !strings.Contains(stdout, "Sprintf    20,000,000        2.500") {
		t.Errorf("filtered table:\n%s", stdout)
	}
	if want := "testdata/itoa.txt: dropped Append/size=8-16: no match\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}
