// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/shopspring/decimal"

	"github.com/tlg-eval/chartspec/internal/series"
)

// Split identifies the last period of the previous segment. The same period
// also opens the current segment.
type Split struct {
	Boundary series.Period
}

// Options configures Build.
type Options struct {
	// Title is copied to Spec.Title unchanged.
	Title string

	// YRange is an optional display hint. Nil lets the renderer auto-scale.
	YRange *Range

	// Split partitions the chart into previous and current segments.
	Split *Split

	// PreviousLabel and CurrentLabel name the two segments of a split chart.
	// They default to "<name> (previous)" and "<name> (current)".
	PreviousLabel string
	CurrentLabel  string
}

// Build assembles a Spec from a validated table. The only error it returns
// is a *series.BoundaryNotFoundError when opts.Split names a missing period.
// Build never modifies t or opts.
func Build(t *series.Table, opts Options) (*Spec, error) {
	spec := &Spec{Title: opts.Title}

	if opts.YRange != nil {
		r := *opts.YRange
		spec.YRange = &r
	}

	if opts.Split == nil {
		spec.Segments = []Segment{
			newSegment(t.Name(), t.Points(), Primary),
		}
	} else {
		previous, current, err := series.Partition(t, opts.Split.Boundary)
		if err != nil {
			return nil, err
		}

		prevLabel := opts.PreviousLabel
		if prevLabel == "" {
			prevLabel = t.Name() + " (previous)"
		}
		curLabel := opts.CurrentLabel
		if curLabel == "" {
			curLabel = t.Name() + " (current)"
		}

		spec.Segments = []Segment{
			newSegment(prevLabel, previous, Secondary),
			newSegment(curLabel, current, Primary),
		}
	}

	ref := BuildReferenceLine(t)
	spec.ReferenceLine = &ref

	return spec, nil
}

func newSegment(label string, points []series.Point, style StyleHint) Segment {
	values := make([]PointValue, len(points))
	for i, p := range points {
		values[i] = PointValue{Period: p.Period, Estimate: p.Estimate}
	}
	return Segment{
		Label:  label,
		Points: values,
		Band:   BuildBand(points),
		Style:  style,
	}
}

// BuildBand returns the per-point confidence bounds of points in order, or
// nil when there are fewer than two points to span.
func BuildBand(points []series.Point) []BandEntry {
	if len(points) < 2 {
		return nil
	}
	band := make([]BandEntry, len(points))
	for i, p := range points {
		band[i] = BandEntry{Period: p.Period, Lower: p.Lower(), Upper: p.Upper()}
	}
	return band
}

// BuildReferenceLine returns the average line over every estimate in t.
// The label is rounded half away from zero to one decimal place.
func BuildReferenceLine(t *series.Table) ReferenceLine {
	sum := decimal.Zero
	for _, p := range t.Points() {
		sum = sum.Add(decimal.NewFromFloat(p.Estimate))
	}
	avg := sum.Div(decimal.NewFromInt(int64(t.Len())))

	return ReferenceLine{
		Value: t.Mean(),
		Label: "Average: " + avg.StringFixed(1) + "%",
	}
}
