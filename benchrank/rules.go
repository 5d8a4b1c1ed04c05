// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import "strings"

// A Rule rewrites the first occurrence of Pattern in a benchmark name
// to Replacement.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Apply returns name with the first occurrence of r.Pattern replaced.
// A Rule with an empty Pattern leaves name unchanged.
func (r Rule) Apply(name string) string {
	if r.Pattern == "" {
		return name
	}
	return strings.Replace(name, r.Pattern, r.Replacement, 1)
}

// DefaultRules turns namespace prefixes joined by an underscore into
// "::" qualifiers and the compiled/runtime variant suffixes into
// one-letter tags. For example, "fmt_format_to_compile" becomes
// "fmt::format_to[c]".
var DefaultRules = []Rule{
	{"std_", "std::"},
	{"fmt_", "fmt::"},
	{"boost_", "boost::"},
	{"_compile", "[c]"},
	{"_runtime", "[r]"},
}

// Rename applies each rule in rules to name, in order, and returns
// the result. Each rule sees the output of the rules before it.
func Rename(name string, rules []Rule) string {
	for _, r := range rules {
		name = r.Apply(name)
	}
	return name
}
