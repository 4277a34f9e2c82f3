// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tlg-eval/chartspec/internal/pipeline"
)

// RenderOpts controls which sections are written.
type RenderOpts struct {
	// Sections restricts output to the named sections. Empty means all.
	Sections []string
}

// Render writes every requested section for each result. Sections that do not
// apply to a chart are skipped.
func Render(w io.Writer, results []pipeline.Result, opts RenderOpts) error {
	names, unknown := ResolveSections(opts.Sections)
	if len(unknown) > 0 {
		return fmt.Errorf("unknown report section(s): %v (available: %v)", unknown, List())
	}

	for i := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first := true
		for _, name := range names {
			var buf bytes.Buffer
			err := Get(name).Render(&buf, &results[i])
			if errors.Is(err, ErrNotApplicable) {
				slog.Debug("section skipped", "section", name, "chart", results[i].Name)
				continue
			}
			if err != nil {
				return fmt.Errorf("chart %s: section %s: %w", results[i].Name, name, err)
			}
			if !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := buf.WriteTo(w); err != nil {
				return err
			}
			first = false
		}
	}
	return nil
}
