// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archivetest opens report archives for tests.
package archivetest

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"flag"
	"fmt"
	"testing"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/perfcharts/benchrank/archive"
)

var cloud = flag.Bool("cloud", false, "connect to Cloud SQL database instead of in-memory SQLite")
var cloudsql = flag.String("cloudsql", "", "name of Cloud SQL `instance` to run tests on")

// cloudDSN creates a fresh database on the -cloudsql instance and
// returns its DSN. The database is dropped when the test finishes.
func cloudDSN(t *testing.T) string {
	t.Helper()
	if *cloudsql == "" {
		t.Fatal("-cloud requires -cloudsql")
	}
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatal(err)
	}
	name := "benchrank-test-" + base64.RawURLEncoding.EncodeToString(suffix)
	server := fmt.Sprintf("root:@cloudsql(%s)/", *cloudsql)

	admin, err := sql.Open("mysql", server)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := admin.Exec("CREATE DATABASE `" + name + "`"); err != nil {
		admin.Close()
		t.Fatalf("creating %s: %v", name, err)
	}
	t.Cleanup(func() {
		defer admin.Close()
		if _, err := admin.Exec("DROP DATABASE `" + name + "`"); err != nil {
			t.Errorf("dropping %s: %v", name, err)
		}
	})
	t.Logf("archive database %q", name)
	return server + name
}

// NewDB returns an empty archive, either in-memory SQLite or Cloud SQL
// depending on the -cloud flag. It is closed when the test finishes.
func NewDB(t *testing.T) *archive.DB {
	t.Helper()
	driverName, dataSourceName := "sqlite3", ":memory:"
	if *cloud {
		driverName, dataSourceName = "mysql", cloudDSN(t)
	}
	d, err := archive.OpenSQL(driverName, dataSourceName)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// Registered after cloudDSN's cleanup, so it runs first.
	t.Cleanup(func() { d.Close() })

	// Make sure the database really is empty.
	n, err := d.CountReports(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("found %d row(s) in Reports, want 0", n)
	}
	return d
}
