// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes chart building as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDir resolves a project directory to an absolute, symlink-free path.
// An empty path means the current directory.
func ResolveDir(path string) (string, error) {
	abs, err := resolve(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return abs, nil
}

// ResolveDataset resolves a dataset file path. It must be a regular file
// with a .csv or .toml extension. An empty path returns "" so callers fall
// back to the built-in dataset.
func ResolveDataset(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := resolve(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("dataset %q does not exist", path)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("dataset %q is not a regular file", path)
	}
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".csv", ".toml":
		return abs, nil
	default:
		return "", fmt.Errorf("dataset %q must be a .csv or .toml file", path)
	}
}

func resolve(path string) (string, error) {
	if path == "" {
		path = "."
	}
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("invalid path %q", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}
	return abs, nil
}
