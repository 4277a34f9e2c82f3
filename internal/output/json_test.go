// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Envelope(t *testing.T) {
	f := &JSONFormatter{nowFunc: fixedNow}
	var buf bytes.Buffer
	require.NoError(t, f.Format(sampleResults(t), &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	meta := got["metadata"].(map[string]any)
	assert.Equal(t, float64(2), meta["total_count"])
	assert.Equal(t, "2026-03-01T12:30:00Z", meta["generated_at"])

	charts := got["charts"].([]any)
	require.Len(t, charts, 2)
	first := charts[0].(map[string]any)
	assert.Equal(t, "emp-split", first["name"])
	assert.Equal(t, "emp", first["indicator"])
	assert.Equal(t, "Rates are **stable**.", first["notes"])

	spec := first["spec"].(map[string]any)
	assert.Equal(t, "Employment", spec["title"])
	segs := spec["segments"].([]any)
	require.Len(t, segs, 2)
	assert.Equal(t, "secondary", segs[0].(map[string]any)["style_hint"])
	assert.Equal(t, "primary", segs[1].(map[string]any)["style_hint"])

	second := charts[1].(map[string]any)
	_, hasNotes := second["notes"]
	assert.False(t, hasNotes)
}

func TestJSONFormatter_PrettyByDefault(t *testing.T) {
	f := &JSONFormatter{nowFunc: fixedNow}
	var buf bytes.Buffer
	require.NoError(t, f.Format(sampleResults(t), &buf))
	assert.Contains(t, buf.String(), "\n  \"charts\"")
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
}

func TestJSONFormatter_Compact(t *testing.T) {
	f := &JSONFormatter{Compact: true, nowFunc: fixedNow}
	var buf bytes.Buffer
	require.NoError(t, f.Format(sampleResults(t), &buf))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestJSONFormatter_CompactForRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck // test cleanup

	f := &JSONFormatter{nowFunc: fixedNow}
	assert.True(t, f.shouldCompact(file))
}

func TestJSONFormatter_Empty(t *testing.T) {
	f := &JSONFormatter{nowFunc: fixedNow}
	var buf bytes.Buffer
	require.NoError(t, f.Format(nil, &buf))
	assert.Contains(t, buf.String(), `"charts": []`)
	assert.Contains(t, buf.String(), `"total_count": 0`)
}
