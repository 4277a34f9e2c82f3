// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package report renders built charts as terminal text. Output is split into
// pluggable sections, each giving a focused view of one chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/tlg-eval/chartspec/internal/pipeline"
)

// ErrNotApplicable indicates a section has nothing to say about a chart,
// e.g. period-over-period changes for a single-point series.
var ErrNotApplicable = errors.New("section not applicable")

// Section is a pluggable report section. Implementations hold no per-chart
// state, so one Section may render many charts concurrently.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "changes").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Render writes the section for r to w. It returns ErrNotApplicable
	// (possibly wrapped) without writing anything when the section does not
	// apply to r.
	Render(w io.Writer, r *pipeline.Result) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ResolveSections returns the names in filter that are registered, in filter
// order, plus the names that are not. An empty filter selects every section.
func ResolveSections(filter []string) (names, unknown []string) {
	if len(filter) == 0 {
		return List(), nil
	}
	for _, name := range filter {
		if Get(name) != nil {
			names = append(names, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return names, unknown
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
