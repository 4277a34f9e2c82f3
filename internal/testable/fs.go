// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package testable abstracts the file system operations the CLI performs
// when writing rendered charts, so tests can inject failures.
package testable

import (
	"io"
	"os"
)

// FileSystem is the subset of os used for writing output.
type FileSystem interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (io.WriteCloser, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info for name.
	Stat(name string) (os.FileInfo, error)
}

// OsFileSystem implements FileSystem with the os package.
type OsFileSystem struct{}

// DefaultFS is the production file system.
var DefaultFS FileSystem = OsFileSystem{}

// Create implements FileSystem.
func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // user-specified output path
}

// MkdirAll implements FileSystem.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Stat implements FileSystem.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Compile-time interface check.
var _ FileSystem = OsFileSystem{}
