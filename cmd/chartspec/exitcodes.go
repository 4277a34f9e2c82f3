// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/tlg-eval/chartspec/internal/dataset"
	"github.com/tlg-eval/chartspec/internal/series"
)

// Exit codes for the chartspec CLI.
const (
	ExitOK            = 0 // Every chart was built and written.
	ExitInvalidArgs   = 1 // Bad flags, config, chart names or split boundaries.
	ExitInvalidData   = 2 // The dataset could not be parsed or failed validation.
	ExitRenderFailure = 3 // Charts were built but could not be written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

// Unwrap returns the underlying cause, if any.
func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitInvalidData:
			msg = "chartspec: invalid data"
		case ExitRenderFailure:
			msg = "chartspec: rendering failed"
		default:
			msg = "chartspec: error"
		}
	}
	var cause error
	for _, a := range args {
		if e, ok := a.(error); ok {
			cause = e
			break
		}
	}
	return &exitCodeError{code: code, msg: msg, err: cause}
}

// buildExitCode classifies an error from loading a dataset or building
// charts. Problems with what the user asked for are argument errors;
// problems with the numbers themselves are data errors.
func buildExitCode(err error) int {
	var boundary *series.BoundaryNotFoundError
	switch {
	case errors.As(err, &boundary),
		errors.Is(err, dataset.ErrUnknownIndicator),
		errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, fs.ErrNotExist):
		return ExitInvalidArgs
	default:
		return ExitInvalidData
	}
}
