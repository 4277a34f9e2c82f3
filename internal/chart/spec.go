// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package chart builds renderer-agnostic chart specifications from indicator
// tables: one or two line segments, a confidence band per segment, and an
// average reference line.
package chart

import (
	"fmt"

	"github.com/tlg-eval/chartspec/internal/series"
)

// StyleHint tells a renderer how strongly to emphasize a segment.
type StyleHint int

const (
	// Primary is the emphasized style. Unsplit charts and the current
	// segment of a split chart use it.
	Primary StyleHint = iota
	// Secondary is the muted style used for the previous segment.
	Secondary
)

// String returns "primary" or "secondary".
func (s StyleHint) String() string {
	switch s {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("StyleHint(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s StyleHint) MarshalText() ([]byte, error) {
	switch s {
	case Primary, Secondary:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown style hint %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StyleHint) UnmarshalText(b []byte) error {
	switch string(b) {
	case "primary":
		*s = Primary
	case "secondary":
		*s = Secondary
	default:
		return fmt.Errorf("unknown style hint %q", string(b))
	}
	return nil
}

// Range is a closed numeric interval used as a y-axis display hint.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PointValue is one plotted estimate.
type PointValue struct {
	Period   series.Period `json:"period"`
	Estimate float64       `json:"estimate"`
}

// BandEntry is one x-position of a confidence ribbon.
type BandEntry struct {
	Period series.Period `json:"period"`
	Lower  float64       `json:"lower"`
	Upper  float64       `json:"upper"`
}

// Segment is a contiguous run of points drawn in a single style. Band is nil
// when the segment has a single point.
type Segment struct {
	Label  string       `json:"label"`
	Points []PointValue `json:"points"`
	Band   []BandEntry  `json:"band,omitempty"`
	Style  StyleHint    `json:"style_hint"`
}

// ReferenceLine is a horizontal line drawn across the whole chart.
type ReferenceLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Spec is the declarative description handed to a renderer.
type Spec struct {
	Title         string         `json:"title"`
	YRange        *Range         `json:"y_range,omitempty"`
	Segments      []Segment      `json:"segments"`
	ReferenceLine *ReferenceLine `json:"reference_line,omitempty"`
}

// PointCount returns the total number of plotted points across segments,
// counting a duplicated split boundary twice.
func (s *Spec) PointCount() int {
	n := 0
	for _, seg := range s.Segments {
		n += len(seg.Points)
	}
	return n
}
