// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/config"
)

// Validate-specific flag values.
var validateDataset string

// validateCmd checks a project's config and dataset without rendering.
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check the config and dataset for problems",
	Long: `Validate .chartspec.yaml and the dataset it points at.

Every indicator is checked for duplicate periods, negative margins and
non-finite values, and every configured chart is built to confirm its
indicator and split boundary exist. All problems are reported, not just
the first.

Exit status is 0 when everything is valid, 1 for config or chart problems
and 2 for dataset problems.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateDataset, "dataset", "", "dataset file (.csv or .toml)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	proj, err := loadProject(dir, validateDataset)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	ok := color.New(color.FgGreen).Sprint("ok")
	fail := color.New(color.FgRed).Sprint("FAIL")

	dataErrs := 0
	for _, ind := range proj.dataset.Indicators {
		if _, err := proj.dataset.Table(ind.Key); err != nil {
			dataErrs++
			// Table errors already name the indicator.
			_, _ = fmt.Fprintf(w, "%s  %v\n", fail, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s    indicator %s (%d periods)\n", ok, ind.Key, len(ind.Rows))
	}

	chartErrs := 0
	for _, name := range config.ChartNames(proj.cfg) {
		req := config.ChartRequest(name, proj.cfg.Charts[name])
		tbl, err := proj.dataset.Table(req.Indicator)
		if err == nil {
			_, err = chart.Build(tbl, req.Options)
		}
		if err != nil {
			chartErrs++
			_, _ = fmt.Fprintf(w, "%s  chart %s: %v\n", fail, name, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s    chart %s\n", ok, name)
	}

	switch {
	case dataErrs > 0:
		return exitError(ExitInvalidData, "chartspec: %d indicator(s) failed validation", dataErrs)
	case chartErrs > 0:
		return exitError(ExitInvalidArgs, "chartspec: %d chart(s) failed validation", chartErrs)
	}
	_, _ = fmt.Fprintf(w, "\n%s: %d indicator(s), %d chart(s) valid\n", proj.dataset.Name, len(proj.dataset.Indicators), len(proj.cfg.Charts))
	return nil
}
