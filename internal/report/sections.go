// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/pipeline"
	"github.com/tlg-eval/chartspec/internal/series"
)

func init() {
	Register(summarySection{})
	Register(segmentsSection{})
	Register(changesSection{})
}

// summarySection prints the chart title, reference line and axis range.
type summarySection struct{}

func (summarySection) Name() string        { return "summary" }
func (summarySection) Description() string { return "Chart title, average line and y-axis range" }

func (summarySection) Render(w io.Writer, r *pipeline.Result) error {
	if r.Spec == nil {
		return fmt.Errorf("summary: %w", ErrNotApplicable)
	}
	spec := r.Spec
	if _, err := fmt.Fprintf(w, "%s\n", SectionTitle(spec.Title)); err != nil {
		return err
	}
	t := NewTable(
		Column{Header: "Field"},
		Column{Header: "Value"},
	)
	t.AddRow("Chart", r.Name)
	t.AddRow("Indicator", r.Indicator)
	t.AddRow("Points", fmt.Sprintf("%d", r.Table.Len()))
	t.AddRow("Segments", fmt.Sprintf("%d", len(spec.Segments)))
	if spec.ReferenceLine != nil {
		t.AddRow("Average", spec.ReferenceLine.Label)
	}
	t.AddRow("Y range", FormatRange(spec.YRange))
	return t.Render(w)
}

// segmentsSection prints one table per segment with band bounds.
type segmentsSection struct{}

func (segmentsSection) Name() string        { return "segments" }
func (segmentsSection) Description() string { return "Per-segment estimates with confidence bounds" }

func (segmentsSection) Render(w io.Writer, r *pipeline.Result) error {
	if r.Spec == nil || len(r.Spec.Segments) == 0 {
		return fmt.Errorf("segments: %w", ErrNotApplicable)
	}
	for i, seg := range r.Spec.Segments {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s [%s]\n", SectionTitle(seg.Label), ColorStyle(seg.Style.String())); err != nil {
			return err
		}
		t := NewTable(
			Column{Header: "Period"},
			Column{Header: "Estimate", Align: AlignRight},
			Column{Header: "Lower", Align: AlignRight},
			Column{Header: "Upper", Align: AlignRight},
		)
		bands := bandByPeriod(seg.Band)
		for _, p := range seg.Points {
			lower, upper := "-", "-"
			if b, ok := bands[p.Period]; ok {
				lower, upper = FormatPercent(b.Lower), FormatPercent(b.Upper)
			}
			t.AddRow(string(p.Period), FormatPercent(p.Estimate), lower, upper)
		}
		if err := t.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// changesSection prints period-over-period movements for the whole table.
type changesSection struct{}

func (changesSection) Name() string        { return "changes" }
func (changesSection) Description() string { return "Period-over-period changes and interval overlap" }

func (changesSection) Render(w io.Writer, r *pipeline.Result) error {
	if r.Table == nil {
		return fmt.Errorf("changes: %w", ErrNotApplicable)
	}
	changes := series.Changes(r.Table)
	if len(changes) == 0 {
		return fmt.Errorf("changes: %w", ErrNotApplicable)
	}
	if _, err := fmt.Fprintf(w, "%s\n", SectionTitle("Changes")); err != nil {
		return err
	}
	return ChangesTable(changes).Render(w)
}

// ChangesTable lays out changes as a Table.
func ChangesTable(changes []series.Change) *Table {
	t := NewTable(
		Column{Header: "From"},
		Column{Header: "To"},
		Column{Header: "Delta", Align: AlignRight},
		Column{Header: "Direction", Color: ColorDirection},
		Column{Header: "Overlap", Color: ColorOverlap},
	)
	for _, c := range changes {
		overlap := "no"
		if c.Overlap {
			overlap = "yes"
		}
		t.AddRow(string(c.From), string(c.To), fmt.Sprintf("%+.1f", c.Delta), string(c.Direction), overlap)
	}
	return t
}

// FormatPercent renders a percentage to one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatRange renders a y-axis range, or "auto" when unset.
func FormatRange(r *chart.Range) string {
	if r == nil {
		return "auto"
	}
	return fmt.Sprintf("%g to %g", r.Min, r.Max)
}

func bandByPeriod(band []chart.BandEntry) map[series.Period]chart.BandEntry {
	m := make(map[series.Period]chart.BandEntry, len(band))
	for _, b := range band {
		m[b.Period] = b
	}
	return m
}
