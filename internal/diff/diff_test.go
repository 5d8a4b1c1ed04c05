// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("equal strings: got %q", d)
	}

	d := Diff("a\nb\nc\n", "a\nx\nc\n")
	if d == "" {
		t.Fatal("different strings: got no diff")
	}
	if !strings.Contains(d, "b") || !strings.Contains(d, "x") {
		t.Errorf("diff does not mention changed lines:\n%s", d)
	}

	if d := Diff("a\n", "a"); d == "" {
		t.Errorf("final newline: got no diff")
	}
}
