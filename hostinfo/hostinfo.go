// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hostinfo describes the machine benchrank runs on.
package hostinfo

import (
	"context"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/perfcharts/benchrank/benchrank"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// Overridden by tests.
var (
	cpuInfo   = cpu.InfoWithContext
	cpuCounts = cpu.CountsWithContext
	hostInfo  = host.InfoWithContext
	now       = time.Now
)

// Describe returns a Context for the current machine. Fields that
// cannot be determined are filled from the Go runtime or left empty.
func Describe(ctx context.Context) benchrank.Context {
	c := benchrank.Context{
		Date: now().Format("2006-01-02 15:04:05"),
	}

	if h, err := hostInfo(ctx); err == nil && h.Hostname != "" {
		c.HostName = h.Hostname
	} else if name, err := os.Hostname(); err == nil {
		c.HostName = name
	}

	if infos, err := cpuInfo(ctx); err == nil && len(infos) > 0 {
		c.CPU = infos[0].ModelName
		if c.CPU == "" {
			c.CPU = infos[0].VendorID
		}
		c.MHzPerCPU = int(math.Round(infos[0].Mhz))
	}
	if c.CPU == "" {
		c.CPU = runtime.GOARCH
	}

	if n, err := cpuCounts(ctx, true); err == nil && n > 0 {
		c.NumCPUs = n
	} else {
		c.NumCPUs = runtime.NumCPU()
	}
	return c
}

// Fill returns c with its empty fields taken from d.
func Fill(c, d benchrank.Context) benchrank.Context {
	str := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	str(&c.Date, d.Date)
	str(&c.HostName, d.HostName)
	str(&c.Executable, d.Executable)
	str(&c.CPU, d.CPU)
	str(&c.BuildType, d.BuildType)
	if c.NumCPUs == 0 {
		c.NumCPUs = d.NumCPUs
	}
	if c.MHzPerCPU == 0 {
		c.MHzPerCPU = d.MHzPerCPU
	}
	c.CPUScaling = c.CPUScaling || d.CPUScaling
	return c
}
