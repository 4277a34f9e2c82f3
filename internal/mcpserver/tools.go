// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tlg-eval/chartspec/internal/config"
	"github.com/tlg-eval/chartspec/internal/dataset"
	"github.com/tlg-eval/chartspec/internal/output"
	"github.com/tlg-eval/chartspec/internal/pipeline"
	"github.com/tlg-eval/chartspec/internal/report"
	"github.com/tlg-eval/chartspec/internal/series"
)

// BuildChartInput is the input schema for the build_chart MCP tool.
type BuildChartInput struct {
	Indicator     string   `json:"indicator" jsonschema:"Indicator key in the dataset, e.g. emp, unemp or inact"`
	Dataset       string   `json:"dataset,omitempty" jsonschema:"Path to a .csv or .toml dataset (default: built-in Kirklees APS extract)"`
	Title         string   `json:"title,omitempty" jsonschema:"Chart title (default: indicator label)"`
	Split         string   `json:"split,omitempty" jsonschema:"Boundary period splitting the chart into previous and current segments"`
	PreviousLabel string   `json:"previous_label,omitempty" jsonschema:"Legend label for the previous segment (requires split)"`
	CurrentLabel  string   `json:"current_label,omitempty" jsonschema:"Legend label for the current segment (requires split)"`
	YMin          *float64 `json:"y_min,omitempty" jsonschema:"Lower bound of the y-axis (set together with y_max)"`
	YMax          *float64 `json:"y_max,omitempty" jsonschema:"Upper bound of the y-axis (set together with y_min)"`
	Format        string   `json:"format,omitempty" jsonschema:"Output format: json, markdown, html or text (default: json)"`
}

// ListIndicatorsInput is the input schema for the list_indicators MCP tool.
type ListIndicatorsInput struct {
	Dataset string `json:"dataset,omitempty" jsonschema:"Path to a .csv or .toml dataset (default: built-in Kirklees APS extract)"`
	Changes bool   `json:"changes,omitempty" jsonschema:"Include period-over-period changes for each indicator"`
}

// BuildConfiguredInput is the input schema for the build_configured MCP tool.
type BuildConfiguredInput struct {
	Path   string `json:"path,omitempty" jsonschema:"Directory containing .chartspec.yaml (defaults to current directory)"`
	Charts string `json:"charts,omitempty" jsonschema:"Comma-separated chart names to build (default: all configured charts)"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json, markdown, html or text (default: json)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all chartspec tools to the MCP server.
func registerTools(server *mcp.Server) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_chart",
		Description: "Build a chart spec for one indicator: estimates, confidence band, average line and optional previous/current split.",
		Annotations: readOnly,
	}, handleBuildChart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_indicators",
		Description: "List the indicators in a dataset with their periods, optionally with period-over-period changes.",
		Annotations: readOnly,
	}, handleListIndicators)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_configured",
		Description: "Build the charts defined in a project's .chartspec.yaml.",
		Annotations: readOnly,
	}, handleBuildConfigured)
}

func handleBuildChart(ctx context.Context, _ *mcp.CallToolRequest, input BuildChartInput) (*mcp.CallToolResult, any, error) {
	formatter, err := streamFormatter(input.Format)
	if err != nil {
		return nil, nil, err
	}

	ds, err := loadDataset(input.Dataset)
	if err != nil {
		return nil, nil, err
	}

	cc := config.ChartConfig{
		Indicator:     input.Indicator,
		Title:         input.Title,
		Split:         input.Split,
		PreviousLabel: input.PreviousLabel,
		CurrentLabel:  input.CurrentLabel,
	}
	switch {
	case input.YMin != nil && input.YMax != nil:
		cc.YRange = []float64{*input.YMin, *input.YMax}
	case input.YMin != nil || input.YMax != nil:
		return nil, nil, fmt.Errorf("y_min and y_max must be set together")
	}

	name := input.Indicator
	if err := config.ValidateChart(name, cc); err != nil {
		return nil, nil, err
	}

	results, err := run(ctx, ds, []pipeline.Request{config.ChartRequest(name, cc)})
	if err != nil {
		return nil, nil, err
	}
	return formatResult(formatter, results)
}

func handleListIndicators(_ context.Context, _ *mcp.CallToolRequest, input ListIndicatorsInput) (*mcp.CallToolResult, any, error) {
	ds, err := loadDataset(input.Dataset)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Dataset: %s\n", ds.Name)
	if ds.Source != "" {
		fmt.Fprintf(&buf, "Source: %s\n", ds.Source)
	}
	for _, ind := range ds.Indicators {
		fmt.Fprintf(&buf, "\n%s: %s (%d periods", ind.Key, ind.Label, len(ind.Rows))
		if n := len(ind.Rows); n > 0 {
			fmt.Fprintf(&buf, ", %s to %s", ind.Rows[0].Period, ind.Rows[n-1].Period)
		}
		buf.WriteString(")\n")

		if !input.Changes {
			continue
		}
		tbl, err := ds.Table(ind.Key)
		if err != nil {
			return nil, nil, err
		}
		if changes := series.Changes(tbl); len(changes) > 0 {
			if err := report.ChangesTable(changes).Render(&buf); err != nil {
				return nil, nil, err
			}
		}
	}

	return textResult(buf.String()), nil, nil
}

func handleBuildConfigured(ctx context.Context, _ *mcp.CallToolRequest, input BuildConfiguredInput) (*mcp.CallToolResult, any, error) {
	dir, err := ResolveDir(input.Path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadMerged(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}

	format := input.Format
	if format == "" {
		format = cfg.OutputFormat
	}
	formatter, err := streamFormatter(format)
	if err != nil {
		return nil, nil, err
	}

	ds, err := loadDataset(config.DatasetPath(dir, cfg))
	if err != nil {
		return nil, nil, err
	}

	var reqs []pipeline.Request
	if len(cfg.Charts) == 0 {
		reqs = pipeline.Defaults(ds)
	} else {
		reqs, err = config.Requests(cfg, splitAndTrim(input.Charts))
		if err != nil {
			return nil, nil, err
		}
	}

	results, err := run(ctx, ds, reqs)
	if err != nil {
		return nil, nil, err
	}
	return formatResult(formatter, results)
}

// streamFormatter returns the formatter for name, defaulting to json.
// Directory formats cannot be returned over MCP.
func streamFormatter(name string) (output.Formatter, error) {
	if name == "" {
		name = "json"
	}
	f, err := output.GetFormatter(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported format %q", name)
	}
	if _, ok := f.(output.DirectoryFormatter); ok {
		return nil, fmt.Errorf("format %q writes a directory and is not available over MCP", name)
	}
	return f, nil
}

func loadDataset(path string) (*dataset.Dataset, error) {
	resolved, err := ResolveDataset(path)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

func run(ctx context.Context, ds *dataset.Dataset, reqs []pipeline.Request) ([]pipeline.Result, error) {
	p, err := pipeline.New(ds, reqs)
	if err != nil {
		return nil, err
	}
	results, err := p.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}
	slog.Debug("mcp charts built", "count", len(results))
	return results, nil
}

func formatResult(f output.Formatter, results []pipeline.Result) (*mcp.CallToolResult, any, error) {
	var buf bytes.Buffer
	if err := f.Format(results, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
