// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"io"
	"os"
)

// MockFileSystem is a FileSystem whose methods can be overridden per test.
// Nil function fields fall through to the real file system.
type MockFileSystem struct {
	CreateFn   func(name string) (io.WriteCloser, error)
	MkdirAllFn func(path string, perm os.FileMode) error
	StatFn     func(name string) (os.FileInfo, error)
}

// Create implements FileSystem.
func (m *MockFileSystem) Create(name string) (io.WriteCloser, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return OsFileSystem{}.Create(name)
}

// MkdirAll implements FileSystem.
func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return OsFileSystem{}.MkdirAll(path, perm)
}

// Stat implements FileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return OsFileSystem{}.Stat(name)
}

// FailingWriter is an io.WriteCloser whose writes always fail with Err.
type FailingWriter struct {
	Err error
}

// Write implements io.Writer.
func (f FailingWriter) Write([]byte) (int, error) { return 0, f.Err }

// Close implements io.Closer.
func (FailingWriter) Close() error { return nil }

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)
