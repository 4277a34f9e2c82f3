// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tlg-eval/chartspec/internal/pipeline"
)

func init() {
	RegisterFormatter(NewHTMLDirFormatter())
}

// HTMLDirFormatter writes an index.html page plus one JSON spec per chart
// under specs/, so that other renderers can pick up individual charts.
type HTMLDirFormatter struct {
	// Title is the index page heading. Defaults to "Indicator charts".
	Title string

	nowFunc func() time.Time
}

// Compile-time interface checks.
var (
	_ Formatter          = (*HTMLDirFormatter)(nil)
	_ DirectoryFormatter = (*HTMLDirFormatter)(nil)
)

// NewHTMLDirFormatter returns a new HTMLDirFormatter.
func NewHTMLDirFormatter() *HTMLDirFormatter {
	return &HTMLDirFormatter{}
}

// Name returns the format name.
func (h *HTMLDirFormatter) Name() string {
	return "html-dir"
}

// Format returns an error directing users to use --output (-o) with html-dir.
func (h *HTMLDirFormatter) Format(_ []pipeline.Result, _ io.Writer) error {
	return fmt.Errorf("html-dir format requires --output (-o) flag to specify output directory")
}

// FormatDir writes index.html and specs/<name>.json to dir.
func (h *HTMLDirFormatter) FormatDir(results []pipeline.Result, dir string) error {
	specsDir := filepath.Join(dir, "specs")
	if err := os.MkdirAll(specsDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, c := range JSONCharts(results) {
		if c.Name == "" || c.Name != filepath.Base(c.Name) || c.Name == "." || c.Name == ".." {
			return fmt.Errorf("chart name %q cannot be used as a file name", c.Name)
		}
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", c.Name, err)
		}
		data = append(data, '\n')
		path := filepath.Join(specsDir, c.Name+".json")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	f, err := os.Create(filepath.Join(dir, "index.html")) //nolint:gosec // path is user-specified output directory
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	defer f.Close() //nolint:errcheck // best-effort close

	page := &HTMLFormatter{Title: h.Title, nowFunc: h.nowFunc}
	return page.Format(results, f)
}
