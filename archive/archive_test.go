// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	. "github.com/perfcharts/benchrank/archive"
	"github.com/perfcharts/benchrank/archive/archivetest"
	"github.com/perfcharts/benchrank/benchrank"
)

func linuxReport(t *testing.T) *Report {
	t.Helper()
	rows, err := benchrank.Transform([]benchrank.Record{
		{Name: "std_to_string", Throughput: 100.4},
		{Name: "fmt_format_int", Throughput: 200.6},
		{Name: "boost_format", Throughput: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	return &Report{
		Title: "linux",
		Context: benchrank.Context{
			Date:       "2020-06-14 07:20:53",
			HostName:   "juno",
			Executable: "./int-benchmark",
			NumCPUs:    16,
			MHzPerCPU:  5000,
			CPUScaling: true,
			BuildType:  "release",
		},
		Rows: rows,
	}
}

func TestSaveLatest(t *testing.T) {
	ctx := context.Background()
	db := archivetest.NewDB(t)

	created := time.Date(2020, 6, 14, 7, 20, 53, 123456000, time.UTC)
	defer SetNow(time.Time{})
	SetNow(created)

	r := linuxReport(t)
	id, err := db.Save(ctx, r)
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 || r.ID != id {
		t.Errorf("Save returned id %d, report has %d", id, r.ID)
	}

	got, err := db.Latest(ctx, "linux")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Created.Equal(created) {
		t.Errorf("Created = %v, want %v", got.Created, created)
	}
	got.Created = r.Created
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("Latest (-want +got):\n%s", diff)
	}

	byID, err := db.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if byID.Title != "linux" || len(byID.Rows) != 3 {
		t.Errorf("Get(%d) = %+v", id, byID)
	}
}

func TestLatestPicksNewest(t *testing.T) {
	ctx := context.Background()
	db := archivetest.NewDB(t)

	old := linuxReport(t)
	if _, err := db.Save(ctx, old); err != nil {
		t.Fatal(err)
	}
	newer := linuxReport(t)
	newer.Rows = newer.Rows[:1]
	if _, err := db.Save(ctx, newer); err != nil {
		t.Fatal(err)
	}

	got, err := db.Latest(ctx, "linux")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != newer.ID || len(got.Rows) != 1 {
		t.Errorf("Latest = report %d with %d rows, want %d with 1", got.ID, len(got.Rows), newer.ID)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	db := archivetest.NewDB(t)

	if _, err := db.Latest(ctx, "mac"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest(mac) = %v, want ErrNotFound", err)
	}
	if _, err := db.Get(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(42) = %v, want ErrNotFound", err)
	}
}

func TestSaveEmptyAndUntitled(t *testing.T) {
	ctx := context.Background()
	db := archivetest.NewDB(t)

	if _, err := db.Save(ctx, &Report{}); err == nil {
		t.Errorf("Save without title: want error")
	}

	empty := &Report{Title: "empty"}
	if _, err := db.Save(ctx, empty); err != nil {
		t.Fatal(err)
	}
	got, err := db.Latest(ctx, "empty")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Rows) != 0 || !got.Context.IsZero() {
		t.Errorf("Latest(empty) = %+v", got)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	db := archivetest.NewDB(t)

	for _, title := range []string{"linux", "mac", "empty"} {
		r := linuxReport(t)
		r.Title = title
		if title == "empty" {
			r.Rows = nil
		}
		if _, err := db.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := db.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, info := range infos {
		got = append(got, info.Title)
	}
	if diff := cmp.Diff([]string{"empty", "mac", "linux"}, got); diff != "" {
		t.Errorf("List titles (-want +got):\n%s", diff)
	}
	if infos[0].NumRows != 0 || infos[1].NumRows != 3 {
		t.Errorf("NumRows = %d, %d; want 0, 3", infos[0].NumRows, infos[1].NumRows)
	}

	infos, err = db.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Errorf("List(2) returned %d reports", len(infos))
	}

	if n, err := db.CountReports(ctx); err != nil || n != 3 {
		t.Errorf("CountReports = %d, %v; want 3", n, err)
	}
}
