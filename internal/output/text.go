// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"

	"github.com/tlg-eval/chartspec/internal/pipeline"
	"github.com/tlg-eval/chartspec/internal/report"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes aligned terminal tables for each chart using the
// report sections.
type TextFormatter struct {
	// Sections restricts output to the named report sections. Empty means all.
	Sections []string
}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a TextFormatter that renders every section.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (t *TextFormatter) Name() string {
	return "text"
}

// Format writes the report for each chart to w.
func (t *TextFormatter) Format(results []pipeline.Result, w io.Writer) error {
	return report.Render(w, results, report.RenderOpts{Sections: t.Sections})
}
