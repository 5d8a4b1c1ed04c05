// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archive stores ranked benchmark reports in a SQL database.
package archive

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/perfcharts/benchrank/benchrank"
)

// ErrNotFound is returned when no report matches a lookup.
var ErrNotFound = errors.New("report not found")

// A Report is one published ranking.
type Report struct {
	// ID is assigned by Save.
	ID int64

	Title string

	// Created is set by Save if zero. It is stored with
	// microsecond precision.
	Created time.Time

	Context benchrank.Context

	// Rows are stored and returned in order.
	Rows []benchrank.Row
}

// ReportInfo summarizes a stored report.
type ReportInfo struct {
	ID      int64
	Title   string
	Created time.Time
	NumRows int
}

// DB is a report archive backed by a SQL database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB

	insertReport *sql.Stmt
}

// now is overridden by tests.
var now = time.Now

// OpenSQL opens an archive. The parameters are the same as the
// parameters for sql.Open. Only mysql and sqlite3 are explicitly
// supported; other database engines will receive MySQL syntax.
//
// The caller must import the driver, and for Cloud SQL DSNs of the
// form "user@cloudsql(project:region:instance)/db" the
// github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql
// package.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	d.insertReport, err = db.Prepare(`INSERT INTO Reports(Title, Created, Date, HostName, Executable, CPU, NumCPUs, MHzPerCPU, CPUScaling, BuildType)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = map[string]func(*sql.DB) error{
	// Each SQLite connection to ":memory:" is a separate database,
	// and SQLite allows a single writer anyway.
	"sqlite3": func(db *sql.DB) error {
		db.SetMaxOpenConns(1)
		_, err := db.Exec("PRAGMA foreign_keys = ON")
		return err
	},
}

// createTmpl is evaluated with . as a map containing one entry whose
// key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Reports (
	ReportID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Title VARCHAR(255) NOT NULL,
	Created BIGINT NOT NULL,
	Date VARCHAR(64),
	HostName VARCHAR(255),
	Executable VARCHAR(1024),
	CPU VARCHAR(255),
	NumCPUs INT,
	MHzPerCPU INT,
	CPUScaling BOOLEAN,
	BuildType VARCHAR(64)
{{- if not .sqlite3}},
	Index (Title)
{{- end}}
);
CREATE TABLE IF NOT EXISTS ReportRows (
	ReportID BIGINT UNSIGNED,
	Position INT,
	Label VARCHAR(255),
	Throughput BIGINT,
	Raw DOUBLE,
	Ratio DOUBLE,
	PRIMARY KEY (ReportID, Position),
	FOREIGN KEY (ReportID) REFERENCES Reports(ReportID) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS ReportsTitle ON Reports(Title);
{{end}}
`))

// createTables creates any missing tables. driverName is the same
// driver name passed to sql.Open and selects the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// Save stores r in a single transaction and sets r.ID.
func (db *DB) Save(ctx context.Context, r *Report) (id int64, err error) {
	if r.Title == "" {
		return 0, errors.New("saving report: missing title")
	}
	if r.Created.IsZero() {
		r.Created = now()
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	c := r.Context
	res, err := tx.StmtContext(ctx, db.insertReport).ExecContext(ctx,
		r.Title, r.Created.UnixMicro(),
		c.Date, c.HostName, c.Executable, c.CPU, c.NumCPUs, c.MHzPerCPU, c.CPUScaling, c.BuildType)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(r.Rows) > 0 {
		var args []interface{}
		for i, row := range r.Rows {
			args = append(args, id, i, row.Label, row.Throughput, row.Raw, row.Ratio)
		}
		query := "INSERT INTO ReportRows VALUES " + strings.Repeat("(?, ?, ?, ?, ?, ?), ", len(r.Rows))
		query = strings.TrimSuffix(query, ", ")
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return 0, err
		}
	}
	r.ID = id
	return id, nil
}

const selectReport = `SELECT ReportID, Title, Created, Date, HostName, Executable, CPU, NumCPUs, MHzPerCPU, CPUScaling, BuildType FROM Reports `

// Latest returns the most recently saved report named title.
func (db *DB) Latest(ctx context.Context, title string) (*Report, error) {
	return db.report(ctx, selectReport+"WHERE Title = ? ORDER BY ReportID DESC LIMIT 1", title)
}

// Get returns the report with the given ID.
func (db *DB) Get(ctx context.Context, id int64) (*Report, error) {
	return db.report(ctx, selectReport+"WHERE ReportID = ?", id)
}

func (db *DB) report(ctx context.Context, query string, args ...interface{}) (*Report, error) {
	var (
		r       Report
		created int64
		c       = &r.Context
		// Older rows may have NULL context columns.
		date, host, exe, cpu, build sql.NullString
		ncpu, mhz                   sql.NullInt64
		scaling                     sql.NullBool
	)
	err := db.sql.QueryRowContext(ctx, query, args...).Scan(
		&r.ID, &r.Title, &created, &date, &host, &exe, &cpu, &ncpu, &mhz, &scaling, &build)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.Created = time.UnixMicro(created)
	c.Date, c.HostName, c.Executable, c.CPU, c.BuildType = date.String, host.String, exe.String, cpu.String, build.String
	c.NumCPUs, c.MHzPerCPU, c.CPUScaling = int(ncpu.Int64), int(mhz.Int64), scaling.Bool

	rows, err := db.sql.QueryContext(ctx, "SELECT Label, Throughput, Raw, Ratio FROM ReportRows WHERE ReportID = ? ORDER BY Position", r.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var row benchrank.Row
		if err := rows.Scan(&row.Label, &row.Throughput, &row.Raw, &row.Ratio); err != nil {
			return nil, err
		}
		r.Rows = append(r.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns up to limit reports, most recent first. A limit of 0
// means no limit.
func (db *DB) List(ctx context.Context, limit int) ([]ReportInfo, error) {
	query := `SELECT r.ReportID, r.Title, r.Created, COUNT(rr.Position)
FROM Reports r LEFT JOIN ReportRows rr ON r.ReportID = rr.ReportID
GROUP BY r.ReportID, r.Title, r.Created
ORDER BY r.ReportID DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var infos []ReportInfo
	for rows.Next() {
		var info ReportInfo
		var created int64
		if err := rows.Scan(&info.ID, &info.Title, &created, &info.NumRows); err != nil {
			return nil, err
		}
		info.Created = time.UnixMicro(created)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// CountReports returns the number of stored reports.
func (db *DB) CountReports(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Reports").Scan(&n)
	return n, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	if err := db.insertReport.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
