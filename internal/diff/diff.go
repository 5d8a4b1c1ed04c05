// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports line differences between rendered outputs
// in tests.
package diff

import (
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Diff returns a human-readable description of the line differences
// between want and got, or "" if they are equal.
// Lines only in want are marked "-" and lines only in got "+".
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	d := cmp.Diff(lines(want), lines(got))
	if d == "" {
		// Equal lines; the strings differ in the final newline.
		return "missing or extra final newline"
	}
	return d
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.SplitAfter(s, "\n")
}
