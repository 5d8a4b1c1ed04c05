// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/perfcharts/benchrank/benchrank"
	"github.com/perfcharts/benchrank/render"
	"gopkg.in/yaml.v3"
)

// config is the contents of a -config file.
type config struct {
	render.Options `yaml:",inline"`

	// Header overrides the table column titles.
	Header []string `yaml:"header"`

	// Rules replaces benchrank.DefaultRules if present.
	Rules *[]benchrank.Rule `yaml:"rules"`
}

func loadConfig(path string) (*config, error) {
	cfg := new(config)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Header != nil && len(cfg.Header) != len(render.DefaultHeader) {
		return nil, fmt.Errorf("%s: header must have %d entries", path, len(render.DefaultHeader))
	}
	return cfg, nil
}

func (c *config) ranker() *benchrank.Ranker {
	if c.Rules == nil {
		return &benchrank.Ranker{Rules: benchrank.DefaultRules}
	}
	return &benchrank.Ranker{Rules: *c.Rules}
}
