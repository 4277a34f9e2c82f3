// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDir_DefaultsToCwd(t *testing.T) {
	got, err := ResolveDir("")
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	wd, err = filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestResolveDir_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := ResolveDir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	_, err = ResolveDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestResolveDir_FollowsSymlink(t *testing.T) {
	realDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	link := filepath.Join(t.TempDir(), "linked")
	require.NoError(t, os.Symlink(realDir, link))

	got, err := ResolveDir(link)
	require.NoError(t, err)
	assert.Equal(t, realDir, got)
}

func TestResolveDataset(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "aps.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date\n"), 0o600))
	txtPath := filepath.Join(dir, "aps.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o600))

	got, err := ResolveDataset("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ResolveDataset(csvPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(csvPath), filepath.Base(got))

	_, err = ResolveDataset(txtPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".csv or .toml")

	_, err = ResolveDataset(dir)
	require.Error(t, err)

	_, err = ResolveDataset(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}

func TestResolve_RejectsNullBytes(t *testing.T) {
	_, err := ResolveDir("some\x00path")
	require.Error(t, err)
	_, err = ResolveDataset("a\x00.csv")
	require.Error(t, err)
}
