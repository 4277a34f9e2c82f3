// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
)

// ErrEmptyName indicates a table was built without an indicator name.
var ErrEmptyName = errors.New("indicator name is empty")

// ErrEmptyInput indicates a table was built from zero rows.
var ErrEmptyInput = errors.New("no rows supplied")

// Field names reported by InvalidValueError.
const (
	FieldEstimate = "estimate"
	FieldMargin   = "margin"
)

// DuplicatePeriodError reports a period that appears more than once.
type DuplicatePeriodError struct {
	Period Period
}

func (e *DuplicatePeriodError) Error() string {
	return fmt.Sprintf("duplicate period %q", string(e.Period))
}

// InvalidValueError reports a non-finite value or a negative margin.
type InvalidValueError struct {
	Period Period
	Field  string // FieldEstimate or FieldMargin
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s for period %q", e.Field, string(e.Period))
}

// BoundaryNotFoundError reports a split boundary that is not in the table.
type BoundaryNotFoundError struct {
	Period Period
}

func (e *BoundaryNotFoundError) Error() string {
	return fmt.Sprintf("split boundary %q not found", string(e.Period))
}
