// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package pipeline builds a batch of chart specs from one dataset.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/dataset"
	"github.com/tlg-eval/chartspec/internal/series"
)

// Request describes one chart to build.
type Request struct {
	// Name identifies the chart in output and URLs.
	Name string

	// Indicator is the dataset key to chart.
	Indicator string

	Options chart.Options

	// Notes is Markdown passed through to renderers.
	Notes string
}

// Result is one built chart.
type Result struct {
	Name      string
	Indicator string
	Spec      *chart.Spec
	Table     *series.Table
	Notes     string
}

// Pipeline builds every request against a single dataset.
type Pipeline struct {
	dataset  *dataset.Dataset
	requests []Request
}

// New creates a Pipeline. It returns an error if there are no requests or if
// two requests share a name.
func New(ds *dataset.Dataset, requests []Request) (*Pipeline, error) {
	if ds == nil {
		return nil, fmt.Errorf("no dataset")
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("no charts requested")
	}
	seen := make(map[string]bool, len(requests))
	for _, r := range requests {
		if r.Name == "" {
			return nil, fmt.Errorf("chart with indicator %q has no name", r.Indicator)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate chart name: %q", r.Name)
		}
		seen[r.Name] = true
	}
	return &Pipeline{dataset: ds, requests: requests}, nil
}

// Run builds every chart concurrently and returns the results in request
// order. The first failure cancels the remaining builds and is returned;
// no partial results are returned alongside an error.
func (p *Pipeline) Run(ctx context.Context) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(p.requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, req := range p.requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.build(req)
			if err != nil {
				return fmt.Errorf("chart %s: %w", req.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("charts built", "dataset", p.dataset.Name, "count", len(results), "duration", time.Since(start))
	return results, nil
}

func (p *Pipeline) build(req Request) (Result, error) {
	tbl, err := p.dataset.Table(req.Indicator)
	if err != nil {
		return Result{}, err
	}

	opts := req.Options
	if opts.Title == "" {
		opts.Title = tbl.Name()
	}

	spec, err := chart.Build(tbl, opts)
	if err != nil {
		return Result{}, err
	}

	slog.Debug("chart built", "chart", req.Name, "indicator", req.Indicator,
		"segments", len(spec.Segments), "points", spec.PointCount())

	return Result{
		Name:      req.Name,
		Indicator: req.Indicator,
		Spec:      spec,
		Table:     tbl,
		Notes:     req.Notes,
	}, nil
}

// Defaults returns one unsplit request per indicator in ds, named by key.
func Defaults(ds *dataset.Dataset) []Request {
	reqs := make([]Request, 0, len(ds.Indicators))
	for _, ind := range ds.Indicators {
		reqs = append(reqs, Request{Name: ind.Key, Indicator: ind.Key})
	}
	return reqs
}
