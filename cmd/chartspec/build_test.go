// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlg-eval/chartspec/internal/output"
	"github.com/tlg-eval/chartspec/internal/testable"
)

func decodeEnvelope(t *testing.T, s string) output.JSONEnvelope {
	t.Helper()
	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal([]byte(s), &env))
	return env
}

func TestBuild_DefaultDatasetAllIndicators(t *testing.T) {
	out, err := execute(t, "build", t.TempDir())
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	require.Len(t, env.Charts, 3)
	assert.Equal(t, 3, env.Metadata.TotalCount)
	assert.Equal(t, []string{"emp", "unemp", "inact"},
		[]string{env.Charts[0].Name, env.Charts[1].Name, env.Charts[2].Name})
	for _, c := range env.Charts {
		require.Len(t, c.Spec.Segments, 1)
		assert.Len(t, c.Spec.Segments[0].Points, 10)
	}
}

func TestBuild_AdHocSplit(t *testing.T) {
	dir := t.TempDir()
	data := writeTestFile(t, dir, "small.csv", smallCSV)

	out, err := execute(t, "build", dir, "--dataset", data,
		"--indicator", "rate", "--name", "r", "--title", "Rate",
		"--split", "2016-17", "--current-label", "Now", "--y-range", "60,80")
	require.NoError(t, err)

	env := decodeEnvelope(t, out)
	require.Len(t, env.Charts, 1)
	spec := env.Charts[0].Spec
	assert.Equal(t, "r", env.Charts[0].Name)
	assert.Equal(t, "Rate", spec.Title)
	require.NotNil(t, spec.YRange)
	assert.Equal(t, 80.0, spec.YRange.Max)
	require.Len(t, spec.Segments, 2)
	assert.Equal(t, "rate (previous)", spec.Segments[0].Label)
	assert.Equal(t, "Now", spec.Segments[1].Label)
	assert.Len(t, spec.Segments[0].Points, 2)
	assert.Len(t, spec.Segments[1].Points, 2)
	require.NotNil(t, spec.ReferenceLine)
	assert.Equal(t, "Average: 71.0%", spec.ReferenceLine.Label)
}

func TestBuild_ConfiguredCharts(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "data/small.csv", smallCSV)
	writeTestFile(t, dir, ".chartspec.yaml", `output_format: markdown
dataset: data/small.csv
charts:
  whole:
    indicator: rate
    title: Whole series
  split:
    indicator: rate
    split: "2017-18"
    notes: A *modest* rise.
`)

	out, err := execute(t, "build", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "## Whole series")
	assert.Contains(t, out, "### rate (current) (primary)")
	assert.Contains(t, out, "A *modest* rise.")

	out, err = execute(t, "build", dir, "--chart", "whole", "--format", "json")
	require.NoError(t, err)
	env := decodeEnvelope(t, out)
	require.Len(t, env.Charts, 1)
	assert.Equal(t, "whole", env.Charts[0].Name)
}

func TestBuild_TextSections(t *testing.T) {
	out, err := execute(t, "build", t.TempDir(), "--format", "text", "--indicator", "emp", "--sections", "changes")
	require.NoError(t, err)
	assert.Contains(t, out, "Changes")
	assert.Contains(t, out, "Jul 2023-Jun 2024")
	assert.NotContains(t, out, "Average")
}

func TestBuild_OutputFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "page.html")
	_, err := execute(t, "build", dir, "--format", "html", "--page-title", "Kirklees", "-o", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Kirklees</h1>")
	assert.Contains(t, string(data), `id="chart-inact"`)
}

func TestBuild_HTMLDir(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "build", dir, "--format", "html-dir")
	requireExitCode(t, err, ExitInvalidArgs)

	site := filepath.Join(dir, "site")
	_, err = execute(t, "build", dir, "--format", "html-dir", "-o", site)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(site, "index.html"))
	assert.FileExists(t, filepath.Join(site, "specs", "unemp.json"))
}

func TestBuild_ArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"--format", "pdf"}},
		{"split without indicator", []string{"--split", "x"}},
		{"chart with indicator", []string{"--chart", "a", "--indicator", "emp"}},
		{"unknown indicator", []string{"--indicator", "gdp"}},
		{"unknown split", []string{"--indicator", "emp", "--split", "1999"}},
		{"bad y-range", []string{"--indicator", "emp", "--y-range", "80"}},
		{"inverted y-range", []string{"--indicator", "emp", "--y-range", "80,60"}},
		{"labels without split", []string{"--indicator", "emp", "--current-label", "now"}},
		{"unknown chart", []string{"--chart", "nope"}},
		{"missing dataset", []string{"--dataset", filepath.Join(dir, "missing.csv")}},
		{"dataset extension", []string{"--dataset", writeTestFile(t, dir, "data.txt", "x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"build", dir}, tt.args...)...)
			requireExitCode(t, err, ExitInvalidArgs)
		})
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".chartspec.yaml", "charts:\n  bad:\n    y_range: [1, 2, 3]\n")
	_, err := execute(t, "build", dir)
	requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestBuild_InvalidData(t *testing.T) {
	dir := t.TempDir()
	data := writeTestFile(t, dir, "dup.csv", duplicateCSV)
	_, err := execute(t, "build", dir, "--dataset", data)
	requireExitCode(t, err, ExitInvalidData)
	assert.Contains(t, err.Error(), `duplicate period "2015-16"`)

	bad := writeTestFile(t, dir, "bad.csv", "Date,rate_pct,rate_conf\n2015-16,abc,1\n")
	_, err = execute(t, "build", dir, "--dataset", bad)
	requireExitCode(t, err, ExitInvalidData)
}

func TestBuild_WriteFailure(t *testing.T) {
	orig := cmdFS
	t.Cleanup(func() { cmdFS = orig })
	boom := errors.New("disk full")
	cmdFS = &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) { return testable.FailingWriter{Err: boom}, nil },
	}

	dir := t.TempDir()
	_, err := execute(t, "build", dir, "-o", filepath.Join(dir, "out.json"))
	requireExitCode(t, err, ExitRenderFailure)

	cmdFS = &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) { return nil, os.ErrPermission },
	}
	_, err = execute(t, "build", dir, "-o", filepath.Join(dir, "out.json"))
	requireExitCode(t, err, ExitRenderFailure)
}

func TestBuild_OutputCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "nested", "deeper", "out.json")
	_, err := execute(t, "build", dir, "-o", dest)
	require.NoError(t, err)
	assert.FileExists(t, dest)
}

func TestBuild_OutputMkdirFailure(t *testing.T) {
	orig := cmdFS
	t.Cleanup(func() { cmdFS = orig })
	cmdFS = &testable.MockFileSystem{
		MkdirAllFn: func(string, os.FileMode) error { return os.ErrPermission },
	}

	dir := t.TempDir()
	_, err := execute(t, "build", dir, "-o", filepath.Join(dir, "sub", "out.json"))
	requireExitCode(t, err, ExitRenderFailure)
}

func TestBuild_HTMLDirRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "f.txt", "x")
	_, err := execute(t, "build", dir, "-f", "html-dir", "-o", file)
	requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, err.Error(), "not a directory")
}
