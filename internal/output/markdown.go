// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/pipeline"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes charts as Markdown tables, one per segment.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes every chart as a Markdown section to w.
//
// Each section contains:
//   - a heading with the chart title
//   - the reference line label and y-range hint
//   - one table per segment with period, estimate and confidence bounds
//   - the chart notes verbatim
func (m *MarkdownFormatter) Format(results []pipeline.Result, w io.Writer) error {
	for _, r := range results {
		if err := writeMarkdownChart(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownChart(w io.Writer, r pipeline.Result) error {
	spec := r.Spec
	if _, err := fmt.Fprintf(w, "## %s\n\n", spec.Title); err != nil {
		return fmt.Errorf("write chart heading: %w", err)
	}

	var meta []string
	meta = append(meta, fmt.Sprintf("**Chart:** `%s`", r.Name))
	if spec.ReferenceLine != nil {
		meta = append(meta, fmt.Sprintf("**%s**", spec.ReferenceLine.Label))
	}
	if spec.YRange != nil {
		meta = append(meta, fmt.Sprintf("**Y range:** %g–%g", spec.YRange.Min, spec.YRange.Max))
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.Join(meta, " | ")); err != nil {
		return fmt.Errorf("write chart summary: %w", err)
	}

	for _, seg := range spec.Segments {
		if err := writeMarkdownSegment(w, seg); err != nil {
			return err
		}
	}

	if r.Notes != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.TrimSpace(r.Notes)); err != nil {
			return fmt.Errorf("write notes: %w", err)
		}
	}
	return nil
}

func writeMarkdownSegment(w io.Writer, seg chart.Segment) error {
	if _, err := fmt.Fprintf(w, "### %s (%s)\n\n", seg.Label, seg.Style); err != nil {
		return fmt.Errorf("write segment heading: %w", err)
	}
	if _, err := fmt.Fprintf(w, "| Period | Estimate | Lower | Upper |\n|--------|----------|-------|-------|\n"); err != nil {
		return fmt.Errorf("write segment table: %w", err)
	}
	for i, p := range seg.Points {
		lower, upper := "–", "–"
		if seg.Band != nil {
			lower = formatPercent(seg.Band[i].Lower)
			upper = formatPercent(seg.Band[i].Upper)
		}
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s |\n", p.Period, formatPercent(p.Estimate), lower, upper); err != nil {
			return fmt.Errorf("write segment row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return fmt.Errorf("write segment end: %w", err)
	}
	return nil
}

// formatPercent formats a percentage to one decimal place.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
