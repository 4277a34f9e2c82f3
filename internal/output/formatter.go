// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for rendering built chart
// specs in various formats.
package output

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/tlg-eval/chartspec/internal/pipeline"
)

// Formatter writes built charts to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "markdown", "html").
	Name() string

	// Format writes the charts to w.
	Format(results []pipeline.Result, w io.Writer) error
}

// DirectoryFormatter extends Formatter for formats that produce a directory
// of files instead of a single stream.
type DirectoryFormatter interface {
	Formatter
	FormatDir(results []pipeline.Result, dir string) error
}

var (
	fmtMu      sync.RWMutex
	formatters = make(map[string]Formatter)
)

// RegisterFormatter makes f available under f.Name(), replacing any
// formatter already registered with that name.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	formatters[f.Name()] = f
}

// GetFormatter looks up a formatter by name.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	if f, ok := formatters[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown format: %q (available: %s)", name, strings.Join(sortedNames(), ", "))
}

// Names returns the registered format names in sorted order.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return sortedNames()
}

// sortedNames must be called with fmtMu held.
func sortedNames() []string {
	return slices.Sorted(maps.Keys(formatters))
}
