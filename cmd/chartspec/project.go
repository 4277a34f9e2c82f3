// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/tlg-eval/chartspec/internal/config"
	"github.com/tlg-eval/chartspec/internal/dataset"
	"github.com/tlg-eval/chartspec/internal/pipeline"
)

// project is a working directory's merged configuration plus its dataset.
type project struct {
	dir     string
	cfg     *config.Config
	dataset *dataset.Dataset
}

// loadProject reads and validates the config in dir, then loads the dataset.
// datasetFlag, when set, replaces the configured dataset path.
func loadProject(dir, datasetFlag string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "chartspec: cannot resolve path %q (%v)", dir, err)
	}

	cfg, err := config.LoadMerged(absDir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "chartspec: failed to load config (%v)", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "chartspec: %v", err)
	}

	path := datasetFlag
	if path == "" {
		path = config.DatasetPath(absDir, cfg)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, exitError(buildExitCode(err), "chartspec: cannot load dataset %q (%v)", path, err)
	}
	slog.Debug("dataset loaded", "name", ds.Name, "indicators", len(ds.Indicators))

	return &project{dir: absDir, cfg: cfg, dataset: ds}, nil
}

// requests returns the configured charts named in only, every configured
// chart when only is empty, or one chart per indicator when nothing is
// configured.
func (p *project) requests(only []string) ([]pipeline.Request, error) {
	if len(p.cfg.Charts) == 0 && len(only) == 0 {
		return pipeline.Defaults(p.dataset), nil
	}
	reqs, err := config.Requests(p.cfg, only)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "chartspec: %v", err)
	}
	return reqs, nil
}

// run builds reqs against the project's dataset.
func (p *project) run(ctx context.Context, reqs []pipeline.Request) ([]pipeline.Result, error) {
	pl, err := pipeline.New(p.dataset, reqs)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "chartspec: %v", err)
	}
	results, err := pl.Run(ctx)
	if err != nil {
		return nil, exitError(buildExitCode(err), "chartspec: %v", err)
	}
	return results, nil
}
