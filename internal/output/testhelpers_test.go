// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/pipeline"
	"github.com/tlg-eval/chartspec/internal/series"
)

func init() {
	color.NoColor = true
}

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
}

// sampleResults returns one split chart and one unsplit chart with a y range.
func sampleResults(t *testing.T) []pipeline.Result {
	t.Helper()
	tbl, err := series.Build("Employment rate", []series.Row{
		{Period: "2015-16", Estimate: 70.0, Margin: 3.0},
		{Period: "2016-17", Estimate: 72.0, Margin: 2.0},
		{Period: "2017-18", Estimate: 71.0, Margin: 2.5},
	})
	require.NoError(t, err)

	split, err := chart.Build(tbl, chart.Options{
		Title: "Employment",
		Split: &chart.Split{Boundary: "2016-17"},
	})
	require.NoError(t, err)

	whole, err := chart.Build(tbl, chart.Options{
		Title:  "Employment (all years)",
		YRange: &chart.Range{Min: 60, Max: 80},
	})
	require.NoError(t, err)

	return []pipeline.Result{
		{Name: "emp-split", Indicator: "emp", Spec: split, Table: tbl, Notes: "Rates are **stable**."},
		{Name: "emp", Indicator: "emp", Spec: whole, Table: tbl},
	}
}
