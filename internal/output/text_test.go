// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter().Format(sampleResults(t), &buf))
	out := buf.String()

	assert.Contains(t, out, "Employment\n")
	assert.Contains(t, out, "Employment (all years)\n")
	assert.Contains(t, out, "60 to 80")
	assert.Contains(t, out, "Employment rate (previous) [secondary]")
	assert.Contains(t, out, "Changes")
}

func TestTextFormatter_SectionFilter(t *testing.T) {
	f := &TextFormatter{Sections: []string{"summary"}}
	var buf bytes.Buffer
	require.NoError(t, f.Format(sampleResults(t), &buf))
	assert.NotContains(t, buf.String(), "Changes")
	assert.Contains(t, buf.String(), "Average: 71.0%")
}
