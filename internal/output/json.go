// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/pipeline"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps chart specs with metadata for the JSON output format.
type JSONEnvelope struct {
	Charts   []JSONChart  `json:"charts"`
	Metadata JSONMetadata `json:"metadata"`
}

// JSONChart is one named chart spec.
type JSONChart struct {
	Name      string      `json:"name"`
	Indicator string      `json:"indicator"`
	Notes     string      `json:"notes,omitempty"`
	Spec      *chart.Spec `json:"spec"`
}

// JSONMetadata contains information about the run that produced the charts.
type JSONMetadata struct {
	TotalCount  int    `json:"total_count"`
	GeneratedAt string `json:"generated_at"`
}

// JSONFormatter writes charts as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces unless w is a pipe.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes all charts as a JSON document with a metadata envelope to w.
func (f *JSONFormatter) Format(results []pipeline.Result, w io.Writer) error {
	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		Charts: JSONCharts(results),
		Metadata: JSONMetadata{
			TotalCount:  len(results),
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}

	enc := json.NewEncoder(w)
	if !f.shouldCompact(w) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// JSONCharts converts results to their JSON form. It never returns nil.
func JSONCharts(results []pipeline.Result) []JSONChart {
	charts := make([]JSONChart, 0, len(results))
	for _, r := range results {
		charts = append(charts, JSONChart{
			Name:      r.Name,
			Indicator: r.Indicator,
			Notes:     r.Notes,
			Spec:      r.Spec,
		})
	}
	return charts
}

// shouldCompact reports whether to drop indentation: always when Compact is
// set, otherwise only when w is a file that is not a terminal.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := file.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}
