// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package publish stores rendered reports in a local directory or a
// Google Cloud Storage bucket.
package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Publisher stores named files.
type Publisher interface {
	// Put stores data as name. Names are slash-separated and
	// relative.
	Put(ctx context.Context, name, contentType string, data []byte) error

	// Close releases any resources held by the Publisher.
	Close() error
}

// Dir is a Publisher that writes files under a local directory,
// creating it as needed.
type Dir string

func (d Dir) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	file := filepath.Join(string(d), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(file), 0777); err != nil {
		return err
	}
	return os.WriteFile(file, data, 0666)
}

func (d Dir) Close() error { return nil }

func checkName(name string) error {
	if name == "" || strings.HasPrefix(name, "/") {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	for _, elem := range strings.Split(name, "/") {
		if elem == "" || elem == "." || elem == ".." {
			return fmt.Errorf("invalid artifact name %q", name)
		}
	}
	return nil
}

// A Dest is a parsed publishing destination.
type Dest struct {
	// Bucket and Prefix are set for gs://bucket/prefix destinations.
	Bucket, Prefix string

	// Dir is set for local destinations.
	Dir string
}

// ParseDest parses dest, which is either gs://bucket[/prefix] or a
// local directory path.
func ParseDest(dest string) (Dest, error) {
	if dest == "" {
		return Dest{}, fmt.Errorf("empty destination")
	}
	rest, ok := strings.CutPrefix(dest, "gs://")
	if !ok {
		return Dest{Dir: dest}, nil
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Dest{}, fmt.Errorf("destination %q: missing bucket", dest)
	}
	return Dest{Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
}

// Open returns a Publisher for dest (see ParseDest). keyFile, if
// set, names a service account JSON key used for Cloud Storage;
// otherwise application default credentials are used.
func Open(ctx context.Context, dest, keyFile string) (Publisher, error) {
	d, err := ParseDest(dest)
	if err != nil {
		return nil, err
	}
	if d.Bucket == "" {
		return Dir(d.Dir), nil
	}
	cred, err := Credentials(ctx, keyFile)
	if err != nil {
		return nil, err
	}
	return NewGCS(ctx, d.Bucket, d.Prefix, cred)
}
