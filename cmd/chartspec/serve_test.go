// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadEnvFile(""))
	require.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))

	t.Setenv(envAddr, "127.0.0.1:9999")
	t.Setenv(envDataset, "")
	unsetenv(t, envTitle)
	path := writeTestFile(t, dir, ".env", "CHARTSPEC_ADDR=0.0.0.0:1\nCHARTSPEC_TITLE=From file\nCHARTSPEC_DATASET=file.csv\n")
	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "127.0.0.1:9999", os.Getenv(envAddr), "existing variables win")
	assert.Equal(t, "From file", os.Getenv(envTitle), "absent variables are filled")

	v, ok := os.LookupEnv(envDataset)
	assert.True(t, ok)
	assert.Empty(t, v, "a variable set to empty is not overridden")
}

// unsetenv removes key for the rest of the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestServe_BuildErrorsBeforeListening(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "serve", dir, "--chart", "nope", "--env-file", "")
	requireExitCode(t, err, ExitInvalidArgs)

	data := writeTestFile(t, dir, "dup.csv", duplicateCSV)
	_, err = execute(t, "serve", dir, "--dataset", data, "--env-file", "")
	requireExitCode(t, err, ExitInvalidData)
}

func TestServe_BadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "bad.env", "BAD-KEY=1\n")
	_, err := execute(t, "serve", dir, "--env-file", path)
	requireExitCode(t, err, ExitInvalidArgs)
}
