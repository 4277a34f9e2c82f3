// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package config handles .chartspec.yaml configuration files.
package config

import "path/filepath"

// Config represents the contents of a .chartspec.yaml file.
type Config struct {
	OutputFormat string                 `yaml:"output_format,omitempty"`
	Dataset      string                 `yaml:"dataset,omitempty"`
	Charts       map[string]ChartConfig `yaml:"charts,omitempty"`
}

// ChartConfig describes one chart to build from the dataset.
type ChartConfig struct {
	// Indicator is the dataset key, e.g. "emp" or "inact".
	Indicator string `yaml:"indicator,omitempty"`
	Title     string `yaml:"title,omitempty"`

	// YRange is [min, max]. Empty lets the renderer auto-scale.
	YRange []float64 `yaml:"y_range,omitempty,flow"`

	// Split is the boundary period for a previous/current chart.
	Split         string `yaml:"split,omitempty"`
	PreviousLabel string `yaml:"previous_label,omitempty"`
	CurrentLabel  string `yaml:"current_label,omitempty"`

	// Notes is Markdown shown beneath the chart by renderers that support it.
	Notes string `yaml:"notes,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".chartspec.yaml"

// DatasetPath returns cfg.Dataset resolved against dir. A relative dataset
// path in a config file is relative to the directory holding that file. An
// empty result selects the built-in dataset.
func DatasetPath(dir string, cfg *Config) string {
	if cfg == nil || cfg.Dataset == "" {
		return ""
	}
	if filepath.IsAbs(cfg.Dataset) {
		return cfg.Dataset
	}
	return filepath.Join(dir, cfg.Dataset)
}
