// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/pipeline"
	"github.com/tlg-eval/chartspec/internal/series"
)

func init() {
	color.NoColor = true
}

func testResult(t *testing.T, split string) pipeline.Result {
	t.Helper()
	tbl, err := series.Build("Employment rate", []series.Row{
		{Period: "2015-16", Estimate: 70.0, Margin: 3.0},
		{Period: "2016-17", Estimate: 72.0, Margin: 2.0},
		{Period: "2017-18", Estimate: 71.0, Margin: 2.5},
	})
	require.NoError(t, err)
	opts := chart.Options{Title: "Employment"}
	if split != "" {
		opts.Split = &chart.Split{Boundary: series.Period(split)}
	}
	spec, err := chart.Build(tbl, opts)
	require.NoError(t, err)
	return pipeline.Result{Name: "emp", Indicator: "emp", Spec: spec, Table: tbl}
}

type stubSection struct {
	name string
	out  string
	err  error
}

func (s stubSection) Name() string        { return s.name }
func (s stubSection) Description() string { return "stub " + s.name }
func (s stubSection) Render(w io.Writer, _ *pipeline.Result) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.out)
	return err
}

// restoreSections snapshots the registry and restores it after the test.
func restoreSections(t *testing.T) {
	t.Helper()
	mu.RLock()
	savedReg := make(map[string]Section, len(registry))
	for k, v := range registry {
		savedReg[k] = v
	}
	savedOrder := append([]string(nil), order...)
	mu.RUnlock()
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		registry = savedReg
		order = savedOrder
	})
}

func TestBuiltinSectionsRegistered(t *testing.T) {
	assert.Equal(t, []string{"summary", "segments", "changes"}, List())
	for _, name := range List() {
		s := Get(name)
		require.NotNil(t, s)
		assert.NotEmpty(t, s.Description())
	}
	assert.Nil(t, Get("nope"))
}

func TestRegister_DuplicatePanics(t *testing.T) {
	restoreSections(t)
	resetForTesting()
	Register(stubSection{name: "a"})
	assert.Panics(t, func() { Register(stubSection{name: "a"}) })
}

func TestResolveSections(t *testing.T) {
	names, unknown := ResolveSections(nil)
	assert.Equal(t, List(), names)
	assert.Empty(t, unknown)

	names, unknown = ResolveSections([]string{"changes", "bogus", "summary"})
	assert.Equal(t, []string{"changes", "summary"}, names)
	assert.Equal(t, []string{"bogus"}, unknown)
}

func TestRender_AllSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []pipeline.Result{testResult(t, "2016-17")}, RenderOpts{}))
	out := buf.String()

	assert.Contains(t, out, "Employment\n")
	assert.Contains(t, out, "Average: 71.0%")
	assert.Contains(t, out, "Y range")
	assert.Contains(t, out, "auto")
	assert.Contains(t, out, "Employment rate (previous) [secondary]")
	assert.Contains(t, out, "Employment rate (current) [primary]")
	assert.Contains(t, out, "67.0%")
	assert.Contains(t, out, "Changes")
	assert.Contains(t, out, "+2.0")
	assert.Contains(t, out, "-1.0")
}

func TestRender_SectionFilter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []pipeline.Result{testResult(t, "")}, RenderOpts{Sections: []string{"changes"}}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Changes\n"), out)
	assert.NotContains(t, out, "Average")
}

func TestRender_UnknownSection(t *testing.T) {
	err := Render(io.Discard, nil, RenderOpts{Sections: []string{"bogus"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestRender_SkipsNotApplicable(t *testing.T) {
	restoreSections(t)
	resetForTesting()
	Register(stubSection{name: "a", out: "A\n"})
	Register(stubSection{name: "skip", err: ErrNotApplicable})
	Register(stubSection{name: "b", out: "B\n"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []pipeline.Result{{Name: "x"}}, RenderOpts{}))
	assert.Equal(t, "A\n\nB\n", buf.String())
}

func TestRender_PropagatesErrors(t *testing.T) {
	restoreSections(t)
	resetForTesting()
	boom := errors.New("boom")
	Register(stubSection{name: "bad", err: boom})

	err := Render(io.Discard, []pipeline.Result{{Name: "x"}}, RenderOpts{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chart x: section bad")
}

func TestChangesSection_SinglePoint(t *testing.T) {
	tbl, err := series.Build("x", []series.Row{{Period: "a", Estimate: 1, Margin: 0}})
	require.NoError(t, err)
	err = changesSection{}.Render(io.Discard, &pipeline.Result{Table: tbl})
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestSegmentsSection_NoBandForSingleton(t *testing.T) {
	r := testResult(t, "2017-18")
	var buf bytes.Buffer
	require.NoError(t, segmentsSection{}.Render(&buf, &r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "2017-18")
	assert.Contains(t, last, "-")
}

func TestTable_Alignment(t *testing.T) {
	tbl := NewTable(Column{Header: "Name"}, Column{Header: "N", Align: AlignRight})
	tbl.AddRow("alpha", "1")
	tbl.AddRow("b", "100", "ignored")
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Equal(t, "  Name     N\n  -----  ---\n  alpha    1\n  b      100\n", buf.String())
}

func TestTable_WidthsCountRunes(t *testing.T) {
	tbl := NewTable(Column{Header: "Label"}, Column{Header: "Key"})
	tbl.AddRow("Rate (16–64)", "emp")
	tbl.AddRow("Other", "x")
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  Rate (16–64)  emp", lines[2])
	assert.Equal(t, "  Other         x  ", lines[3])
}

func TestTable_ColorAppliedToCells(t *testing.T) {
	tbl := NewTable(Column{Header: "D", Color: func(v string) string { return "<" + v + ">" }})
	tbl.AddRow("up")
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Equal(t, "  D \n  --\n  <up>\n", buf.String())
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "auto", FormatRange(nil))
	assert.Equal(t, "60 to 80", FormatRange(&chart.Range{Min: 60, Max: 80}))
}

func TestColorHelpers_NoColor(t *testing.T) {
	assert.Equal(t, "up", ColorDirection("up"))
	assert.Equal(t, "primary", ColorStyle("primary"))
	assert.Equal(t, "no", ColorOverlap("no"))
}
