// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tlg-eval/chartspec/internal/server"
)

// Environment variables read by serve. Flags take precedence.
const (
	envAddr    = "CHARTSPEC_ADDR"
	envDataset = "CHARTSPEC_DATASET"
	envTitle   = "CHARTSPEC_TITLE"
)

// Serve-specific flag values.
var (
	serveAddr    string
	serveDataset string
	serveTitle   string
	serveCharts  []string
	serveEnvFile string
)

// serveCmd hosts the built charts over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve charts as an HTML dashboard and JSON API",
	Long: `Build the configured charts once and serve them over HTTP:

  GET /                    HTML dashboard with every chart
  GET /charts/{name}       HTML page for one chart
  GET /api/charts          chart names, indicators and titles
  GET /api/charts/{name}   the chart spec as JSON
  GET /healthz             liveness check

Defaults for --addr, --dataset and --title can be set with CHARTSPEC_ADDR,
CHARTSPEC_DATASET and CHARTSPEC_TITLE, either in the environment or in a
.env file (see --env-file). Existing environment variables are never
overwritten by the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveAddr, "addr", "", "listen address (default "+server.DefaultConfig().Addr+")")
	f.StringVar(&serveDataset, "dataset", "", "dataset file (.csv or .toml)")
	f.StringVar(&serveTitle, "title", "", "dashboard heading")
	f.StringSliceVar(&serveCharts, "chart", nil, "configured charts to serve (default: all)")
	f.StringVar(&serveEnvFile, "env-file", ".env", "file of KEY=value defaults; missing is not an error")
}

func runServe(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := loadEnvFile(serveEnvFile); err != nil {
		return exitError(ExitInvalidArgs, "chartspec: cannot read env file %q (%v)", serveEnvFile, err)
	}

	proj, err := loadProject(dir, firstNonEmpty(serveDataset, os.Getenv(envDataset)))
	if err != nil {
		return err
	}
	reqs, err := proj.requests(serveCharts)
	if err != nil {
		return err
	}
	results, err := proj.run(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	cfg.Addr = firstNonEmpty(serveAddr, os.Getenv(envAddr), cfg.Addr)
	cfg.Title = firstNonEmpty(serveTitle, os.Getenv(envTitle), proj.dataset.Name)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "chartspec: serving %d chart(s) on http://%s\n", len(results), cfg.Addr)
	if err := server.New(results, cfg).ListenAndServe(ctx); err != nil {
		return exitError(ExitRenderFailure, "chartspec: server failed (%v)", err)
	}
	return nil
}

// loadEnvFile loads KEY=value pairs from path without overriding variables
// already set. A missing file is ignored.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
