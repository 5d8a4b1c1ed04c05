// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import "testing"

func TestRename(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"fmt_format_compile", "fmt::format[c]"},
		{"fmt_format_runtime", "fmt::format[r]"},
		{"fmt_format_to_compile", "fmt::format_to[c]"},
		{"fmt_format_to_runtime", "fmt::format_to[r]"},
		{"fmt_format_int", "fmt::format_int"},
		{"std_to_string", "std::to_string"},
		{"std_ostringstream", "std::ostringstream"},
		{"boost_karma_generate", "boost::karma_generate"},
		{"boost_lexical_cast", "boost::lexical_cast"},
		{"sprintf", "sprintf"},
		{"voigt_itostr", "voigt_itostr"},
		{"decimal_from", "decimal_from"},
		// Only the first occurrence of each pattern is rewritten.
		{"std_std_x", "std::std_x"},
		{"a_compile_compile", "a[c]_compile"},
		{"", ""},
	} {
		if got := Rename(test.in, DefaultRules); got != test.want {
			t.Errorf("Rename(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestRuleOrder(t *testing.T) {
	// Later rules see the output of earlier ones.
	rules := []Rule{{"a", "b"}, {"b", "c"}}
	if got := Rename("a", rules); got != "c" {
		t.Errorf("Rename(a) = %q, want c", got)
	}
	if got := Rename("a", []Rule{{"b", "c"}, {"a", "b"}}); got != "b" {
		t.Errorf("Rename(a) with reversed rules = %q, want b", got)
	}
}

func TestEmptyPattern(t *testing.T) {
	if got := (Rule{"", "x"}).Apply("name"); got != "name" {
		t.Errorf("empty pattern rewrote name to %q", got)
	}
}
