// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package dataset loads indicator tables from CSV and TOML files and exposes
// them as validated series tables.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tlg-eval/chartspec/internal/series"
)

// ErrUnknownIndicator indicates a lookup for an indicator key the dataset
// does not contain.
var ErrUnknownIndicator = errors.New("unknown indicator")

// ErrUnsupportedFormat is returned by Load for file extensions other than
// .csv and .toml.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// DefaultName is the name of the built-in dataset.
const DefaultName = "kirklees-aps"

//go:embed aps_kirklees.csv
var apsKirkleesCSV string

// Labels maps the APS column prefixes to their published indicator names.
var Labels = map[string]string{
	"emp":   "Employment rate (16–64)",
	"unemp": "Unemployment rate (16–64)",
	"inact": "Economic inactivity rate (16–64)",
}

// Indicator is one named series within a dataset.
type Indicator struct {
	Key   string       `toml:"key"`
	Label string       `toml:"label"`
	Rows  []series.Row `toml:"row"`
}

// Dataset is a collection of indicators sharing a source.
type Dataset struct {
	Name       string      `toml:"name"`
	Source     string      `toml:"source"`
	Indicators []Indicator `toml:"indicator"`
}

// Keys returns the indicator keys in dataset order.
func (d *Dataset) Keys() []string {
	keys := make([]string, len(d.Indicators))
	for i, ind := range d.Indicators {
		keys[i] = ind.Key
	}
	return keys
}

// Indicator returns the indicator with the given key.
func (d *Dataset) Indicator(key string) (*Indicator, error) {
	for i := range d.Indicators {
		if d.Indicators[i].Key == key {
			return &d.Indicators[i], nil
		}
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownIndicator, key, strings.Join(d.Keys(), ", "))
}

// Table builds a validated series table for the indicator with the given key.
func (d *Dataset) Table(key string) (*series.Table, error) {
	ind, err := d.Indicator(key)
	if err != nil {
		return nil, err
	}
	label := ind.Label
	if label == "" {
		label = ind.Key
	}
	tbl, err := series.Build(label, ind.Rows)
	if err != nil {
		return nil, fmt.Errorf("indicator %s: %w", key, err)
	}
	return tbl, nil
}

// Default returns the built-in Annual Population Survey extract for Kirklees.
func Default() *Dataset {
	d, err := ParseCSV(DefaultName, strings.NewReader(apsKirkleesCSV))
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	d.Source = "Annual Population Survey (APS), ONS"
	return d
}

// Load reads a dataset from path, choosing the parser by file extension.
// An empty path returns Default.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path) //nolint:gosec // user-provided dataset path
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(name, f)
	case ".toml":
		d, err := LoadTOML(f)
		if err != nil {
			return nil, err
		}
		if d.Name == "" {
			d.Name = name
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w %q (expected .csv or .toml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
