// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".chartspec.yaml", `charts:
  employment:
    indicator: emp
    split: Jul 2019-Jun 2020
`)

	out, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok    indicator emp (10 periods)")
	assert.Contains(t, out, "ok    chart employment")
	assert.Contains(t, out, "kirklees-aps: 3 indicator(s), 1 chart(s) valid")
}

func TestValidate_ReportsEveryBadChart(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".chartspec.yaml", `charts:
  a:
    indicator: gdp
  b:
    indicator: emp
    split: "1999"
  c:
    indicator: emp
`)

	out, err := execute(t, "validate", dir)
	requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, err.Error(), "2 chart(s) failed validation")
	assert.Contains(t, out, `FAIL  chart a: unknown indicator "gdp" (available: emp, unemp, inact)`)
	assert.Contains(t, out, `FAIL  chart b: split boundary "1999" not found`)
	assert.Contains(t, out, "ok    chart c")
}

func TestValidate_BadData(t *testing.T) {
	dir := t.TempDir()
	data := writeTestFile(t, dir, "neg.csv", "Date,rate_pct,rate_conf,other_pct,other_conf\n2015-16,70,-1,5,1\n")

	out, err := execute(t, "validate", dir, "--dataset", data)
	requireExitCode(t, err, ExitInvalidData)
	assert.Contains(t, out, `FAIL  indicator rate: invalid margin for period "2015-16"`)
	assert.NotContains(t, out, "indicator rate: indicator rate")
	assert.Contains(t, out, "ok    indicator other (1 periods)")
}

func TestValidate_BadConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".chartspec.yaml", "output_format: pdf\n")
	_, err := execute(t, "validate", dir)
	requireExitCode(t, err, ExitInvalidArgs)
}
