// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tlg-eval/chartspec/internal/config"
	"github.com/tlg-eval/chartspec/internal/output"
	"github.com/tlg-eval/chartspec/internal/pipeline"
)

// Build-specific flag values.
var (
	buildDataset       string
	buildFormat        string
	buildOutput        string
	buildCharts        []string
	buildSections      []string
	buildPageTitle     string
	buildIndicator     string
	buildName          string
	buildTitle         string
	buildSplit         string
	buildYRange        string
	buildPreviousLabel string
	buildCurrentLabel  string
	buildNotes         string
)

// buildCmd builds chart specs and writes them in the chosen format.
var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Build chart specs from a dataset",
	Long: `Build chart specs and render them.

Charts come from one of three places, in order:
  1. --indicator and friends describe a single ad-hoc chart
  2. the charts section of .chartspec.yaml in dir (default ".")
  3. otherwise, one unsplit chart per indicator in the dataset

Without --dataset the configured dataset is used, or the built-in
Kirklees Annual Population Survey extract.

Examples:
  chartspec build
  chartspec build --format html -o dashboard.html
  chartspec build --indicator inact --split "Jul 2019-Jun 2020" --y-range 0,40
  chartspec build --format html-dir -o site/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVar(&buildDataset, "dataset", "", "dataset file (.csv or .toml)")
	f.StringVarP(&buildFormat, "format", "f", "", "output format: "+fmt.Sprint(output.Names())+" (default json)")
	f.StringVarP(&buildOutput, "output", "o", "", "write output to a file (or directory for html-dir)")
	f.StringSliceVar(&buildCharts, "chart", nil, "configured charts to build (default: all)")
	f.StringSliceVar(&buildSections, "sections", nil, "report sections for the text format (default: all)")
	f.StringVar(&buildPageTitle, "page-title", "", "page heading for the html formats")

	f.StringVar(&buildIndicator, "indicator", "", "build one ad-hoc chart for this indicator key")
	f.StringVar(&buildName, "name", "", "chart name for --indicator (default: the indicator key)")
	f.StringVar(&buildTitle, "title", "", "chart title for --indicator")
	f.StringVar(&buildSplit, "split", "", "boundary period for a previous/current split")
	f.StringVar(&buildYRange, "y-range", "", `y-axis range as "min,max"`)
	f.StringVar(&buildPreviousLabel, "previous-label", "", "legend label for the previous segment")
	f.StringVar(&buildCurrentLabel, "current-label", "", "legend label for the current segment")
	f.StringVar(&buildNotes, "notes", "", "Markdown notes shown with the chart")
}

// adHocFlags are only meaningful together with --indicator.
var adHocFlags = []string{"name", "title", "split", "y-range", "previous-label", "current-label", "notes"}

func runBuild(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if buildIndicator == "" {
		for _, name := range adHocFlags {
			if cmd.Flags().Changed(name) {
				return exitError(ExitInvalidArgs, "chartspec: --%s requires --indicator", name)
			}
		}
	} else if len(buildCharts) > 0 {
		return exitError(ExitInvalidArgs, "chartspec: --chart and --indicator cannot be used together")
	}

	proj, err := loadProject(dir, buildDataset)
	if err != nil {
		return err
	}

	formatName := buildFormat
	if formatName == "" {
		formatName = proj.cfg.OutputFormat
	}
	if formatName == "" {
		formatName = "json"
	}
	formatter, err := buildFormatter(formatName)
	if err != nil {
		return exitError(ExitInvalidArgs, "chartspec: %v", err)
	}

	reqs, err := buildRequests(proj)
	if err != nil {
		return err
	}

	results, err := proj.run(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	if err := writeResults(cmd, formatter, results, buildOutput); err != nil {
		return err
	}
	slog.Info("build complete", "charts", len(results), "format", formatName)
	return nil
}

// buildFormatter returns the named formatter, applying --sections and
// --page-title where they apply.
func buildFormatter(name string) (output.Formatter, error) {
	f, err := output.GetFormatter(name)
	if err != nil {
		return nil, err
	}
	switch name {
	case "text":
		if len(buildSections) > 0 {
			return &output.TextFormatter{Sections: buildSections}, nil
		}
	case "html":
		if buildPageTitle != "" {
			return &output.HTMLFormatter{Title: buildPageTitle}, nil
		}
	case "html-dir":
		if buildPageTitle != "" {
			return &output.HTMLDirFormatter{Title: buildPageTitle}, nil
		}
	}
	return f, nil
}

func buildRequests(proj *project) ([]pipeline.Request, error) {
	if buildIndicator != "" {
		cc := config.ChartConfig{
			Indicator:     buildIndicator,
			Title:         buildTitle,
			Split:         buildSplit,
			PreviousLabel: buildPreviousLabel,
			CurrentLabel:  buildCurrentLabel,
			Notes:         buildNotes,
		}
		if buildYRange != "" {
			r, err := config.ParseRange(buildYRange)
			if err != nil {
				return nil, exitError(ExitInvalidArgs, "chartspec: --y-range: %v", err)
			}
			cc.YRange = r
		}
		name := buildName
		if name == "" {
			name = buildIndicator
		}
		if err := config.ValidateChart(name, cc); err != nil {
			return nil, exitError(ExitInvalidArgs, "chartspec: %v", err)
		}
		return []pipeline.Request{config.ChartRequest(name, cc)}, nil
	}

	return proj.requests(buildCharts)
}

// writeResults formats results to stdout, a file, or a directory.
func writeResults(cmd *cobra.Command, formatter output.Formatter, results []pipeline.Result, dest string) error {
	if df, ok := formatter.(output.DirectoryFormatter); ok {
		if dest == "" {
			return exitError(ExitInvalidArgs, "chartspec: %s format requires --output (-o) flag to specify output directory", formatter.Name())
		}
		if fi, err := cmdFS.Stat(dest); err == nil && !fi.IsDir() {
			return exitError(ExitInvalidArgs, "chartspec: output %q exists and is not a directory", dest)
		}
		if err := df.FormatDir(results, dest); err != nil {
			return exitError(ExitRenderFailure, "chartspec: formatting failed (%v)", err)
		}
		return nil
	}

	w := cmd.OutOrStdout()
	if dest != "" {
		if err := cmdFS.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return exitError(ExitRenderFailure, "chartspec: cannot create output directory (%v)", err)
		}
		f, err := cmdFS.Create(dest)
		if err != nil {
			return exitError(ExitRenderFailure, "chartspec: cannot create output file %q (%v)", dest, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if err := formatter.Format(results, w); err != nil {
		return exitError(ExitRenderFailure, "chartspec: formatting failed (%v)", err)
	}
	return nil
}
