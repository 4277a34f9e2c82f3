// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tlg-eval/chartspec/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	names := make([]string, 0, len(cfg.Charts))
	for name := range cfg.Charts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		errs = append(errs, chartProblems(name, cfg.Charts[name])...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ValidateChart checks a single chart definition, as used for charts that
// are described on the command line or by an MCP client.
func ValidateChart(name string, cc ChartConfig) error {
	if errs := chartProblems(name, cc); len(errs) > 0 {
		return fmt.Errorf("invalid chart: %s", strings.Join(errs, "; "))
	}
	return nil
}

func chartProblems(name string, cc ChartConfig) []string {
	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "charts: chart name must not be empty")
	}

	if cc.Indicator == "" {
		errs = append(errs, fmt.Sprintf("charts.%s.indicator: required", name))
	}

	if len(cc.YRange) > 0 {
		switch {
		case len(cc.YRange) != 2:
			errs = append(errs, fmt.Sprintf("charts.%s.y_range: must have exactly 2 values [min, max], got %d", name, len(cc.YRange)))
		case math.IsNaN(cc.YRange[0]) || math.IsNaN(cc.YRange[1]) || math.IsInf(cc.YRange[0], 0) || math.IsInf(cc.YRange[1], 0):
			errs = append(errs, fmt.Sprintf("charts.%s.y_range: values must be finite", name))
		case cc.YRange[0] >= cc.YRange[1]:
			errs = append(errs, fmt.Sprintf("charts.%s.y_range: min must be less than max, got [%g, %g]", name, cc.YRange[0], cc.YRange[1]))
		}
	}

	if cc.Split == "" && (cc.PreviousLabel != "" || cc.CurrentLabel != "") {
		errs = append(errs, fmt.Sprintf("charts.%s: previous_label/current_label require split", name))
	}
	return errs
}
