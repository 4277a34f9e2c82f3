// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package series defines the validated indicator table that chart specs are
// built from. A Table is an ordered, immutable list of period estimates with
// symmetric confidence margins.
package series

import (
	"math"
	"strings"
)

// Period is an opaque label for one reporting interval. Row order, not the
// label text, defines chronological order.
type Period string

// Row is one caller-supplied input row.
type Row struct {
	Period   Period  `json:"period" toml:"period" yaml:"period"`
	Estimate float64 `json:"estimate" toml:"estimate" yaml:"estimate"`
	Margin   float64 `json:"margin" toml:"margin" yaml:"margin"`
}

// Point is a validated row. Confidence bounds are always derived from the
// estimate and margin.
type Point struct {
	Period   Period
	Estimate float64
	Margin   float64
}

// Lower returns Estimate - Margin.
func (p Point) Lower() float64 { return p.Estimate - p.Margin }

// Upper returns Estimate + Margin.
func (p Point) Upper() float64 { return p.Estimate + p.Margin }

// Table is an ordered sequence of points for a single named indicator.
// It is never modified after Build returns it.
type Table struct {
	name   string
	points []Point
	index  map[Period]int
}

// Build validates rows and returns a Table. Rules are checked in order and
// the first failure is returned:
//
//  1. name must be non-empty (ErrEmptyName)
//  2. rows must be non-empty (ErrEmptyInput)
//  3. periods must be unique (*DuplicatePeriodError)
//  4. estimates and margins must be finite, margins non-negative, and the
//     derived bounds finite (*InvalidValueError)
func Build(name string, rows []Row) (*Table, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	index := make(map[Period]int, len(rows))
	for i, r := range rows {
		if _, dup := index[r.Period]; dup {
			return nil, &DuplicatePeriodError{Period: r.Period}
		}
		index[r.Period] = i
	}

	points := make([]Point, len(rows))
	for i, r := range rows {
		if !finite(r.Estimate) {
			return nil, &InvalidValueError{Period: r.Period, Field: FieldEstimate}
		}
		points[i] = Point(r)
		if !finite(r.Margin) || r.Margin < 0 || !finite(points[i].Lower()) || !finite(points[i].Upper()) {
			return nil, &InvalidValueError{Period: r.Period, Field: FieldMargin}
		}
	}

	return &Table{name: name, points: points, index: index}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Name returns the indicator label.
func (t *Table) Name() string { return t.name }

// Len returns the number of points.
func (t *Table) Len() int { return len(t.points) }

// At returns the i-th point. It panics if i is out of range.
func (t *Table) At(i int) Point { return t.points[i] }

// Points returns a copy of the table's points in order.
func (t *Table) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Periods returns the table's periods in order.
func (t *Table) Periods() []Period {
	out := make([]Period, len(t.points))
	for i, p := range t.points {
		out[i] = p.Period
	}
	return out
}

// Index returns the position of period in the table, or -1 if absent.
func (t *Table) Index(period Period) int {
	i, ok := t.index[period]
	if !ok {
		return -1
	}
	return i
}

// Mean returns the arithmetic mean of every estimate in the table. It is
// accumulated incrementally so that finite estimates give a finite mean.
func (t *Table) Mean() float64 {
	var m float64
	for i, p := range t.points {
		n := float64(i + 1)
		m += p.Estimate/n - m/n
	}
	return m
}
