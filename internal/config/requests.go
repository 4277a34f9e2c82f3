// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/pipeline"
	"github.com/tlg-eval/chartspec/internal/series"
)

// ChartNames returns the configured chart names in sorted order.
func ChartNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Charts))
	for name := range cfg.Charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Requests converts configured charts into pipeline requests. If only is
// non-empty, just those charts are returned, in the order given; otherwise
// every chart is returned sorted by name.
func Requests(cfg *Config, only []string) ([]pipeline.Request, error) {
	names := only
	if len(names) == 0 {
		names = ChartNames(cfg)
	}

	reqs := make([]pipeline.Request, 0, len(names))
	for _, name := range names {
		cc, ok := cfg.Charts[name]
		if !ok {
			return nil, fmt.Errorf("unknown chart %q (configured: %s)", name, strings.Join(ChartNames(cfg), ", "))
		}
		reqs = append(reqs, ChartRequest(name, cc))
	}
	return reqs, nil
}

// ChartRequest converts a single chart config. It assumes cc passed Validate.
func ChartRequest(name string, cc ChartConfig) pipeline.Request {
	opts := chart.Options{
		Title:         cc.Title,
		PreviousLabel: cc.PreviousLabel,
		CurrentLabel:  cc.CurrentLabel,
	}
	if len(cc.YRange) == 2 {
		opts.YRange = &chart.Range{Min: cc.YRange[0], Max: cc.YRange[1]}
	}
	if cc.Split != "" {
		opts.Split = &chart.Split{Boundary: series.Period(cc.Split)}
	}
	return pipeline.Request{
		Name:      name,
		Indicator: cc.Indicator,
		Options:   opts,
		Notes:     cc.Notes,
	}
}
