// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for chartspec using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the CLI verbosity flags to a slog level. Quiet wins over verbose.
//
//   - quiet mode:   WARN and above
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs a stderr text logger as the slog default.
func Setup(verbose, quiet bool) {
	slog.SetDefault(New(os.Stderr, Level(verbose, quiet)))
}
