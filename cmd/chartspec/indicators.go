// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tlg-eval/chartspec/internal/report"
	"github.com/tlg-eval/chartspec/internal/series"
)

// Indicators-specific flag values.
var (
	indicatorsDataset string
	indicatorsChanges bool
)

// indicatorsCmd lists the indicators available in a dataset.
var indicatorsCmd = &cobra.Command{
	Use:   "indicators [dir]",
	Short: "List the indicators in a dataset",
	Long: `List every indicator in the dataset with its period range and latest
estimate. With --changes, also print period-over-period movements and
whether consecutive confidence intervals overlap.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndicators,
}

func init() {
	indicatorsCmd.Flags().StringVar(&indicatorsDataset, "dataset", "", "dataset file (.csv or .toml)")
	indicatorsCmd.Flags().BoolVar(&indicatorsChanges, "changes", false, "show period-over-period changes")
}

func runIndicators(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	proj, err := loadProject(dir, indicatorsDataset)
	if err != nil {
		return err
	}
	ds := proj.dataset
	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "%s\n", report.SectionTitle(ds.Name))
	if ds.Source != "" {
		_, _ = fmt.Fprintf(w, "Source: %s\n", ds.Source)
	}
	_, _ = fmt.Fprintln(w)

	tables := make([]*series.Table, 0, len(ds.Indicators))
	t := report.NewTable(
		report.Column{Header: "Key"},
		report.Column{Header: "Label"},
		report.Column{Header: "Periods", Align: report.AlignRight},
		report.Column{Header: "First"},
		report.Column{Header: "Last"},
		report.Column{Header: "Latest", Align: report.AlignRight},
	)
	for _, ind := range ds.Indicators {
		tbl, err := ds.Table(ind.Key)
		if err != nil {
			return exitError(ExitInvalidData, "chartspec: %v", err)
		}
		tables = append(tables, tbl)
		last := tbl.At(tbl.Len() - 1)
		t.AddRow(
			ind.Key,
			tbl.Name(),
			fmt.Sprintf("%d", tbl.Len()),
			string(tbl.At(0).Period),
			string(last.Period),
			report.FormatPercent(last.Estimate),
		)
	}
	if err := t.Render(w); err != nil {
		return exitError(ExitRenderFailure, "chartspec: %v", err)
	}

	if !indicatorsChanges {
		return nil
	}
	for i, tbl := range tables {
		changes := series.Changes(tbl)
		if len(changes) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s (%s)\n", report.SectionTitle(tbl.Name()), ds.Indicators[i].Key)
		if err := report.ChangesTable(changes).Render(w); err != nil {
			return exitError(ExitRenderFailure, "chartspec: %v", err)
		}
	}
	return nil
}
