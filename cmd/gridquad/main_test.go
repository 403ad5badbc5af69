// SPDX-License-Identifier: MIT
//
// main_test.go — spec-file loading and command plumbing.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBuild_S2Spec(t *testing.T) {
	path := writeSpec(t, `
geometry: s2
methods:
  - method: lebedev
    degree: 7
`)
	q, sf, err := build(path)
	require.NoError(t, err)

	assert.Equal(t, "s2", sf.Geometry)
	assert.Equal(t, 26, q.Size())
}

func TestBuild_RnSpecWithBounds(t *testing.T) {
	path := writeSpec(t, `
geometry: rn
methods:
  - method: gauss-legendre
    degree: 21
    a: -10
    b: 5
`)
	q, _, err := build(path)
	require.NoError(t, err)

	assert.Equal(t, 11, q.Size())
	var wsum float64
	for _, w := range q.Weights() {
		wsum += w
	}
	assert.InDelta(t, 15.0, wsum, 1e-10)
}

func TestBuild_Rejects(t *testing.T) {
	_, _, err := build(writeSpec(t, "geometry: klein-bottle\nmethods: []\n"))
	assert.ErrorContains(t, err, "unknown geometry")

	_, _, err = build(writeSpec(t, `
geometry: s2
polar_sampling: sinh
methods:
  - method: lebedev
    degree: 3
`))
	assert.ErrorContains(t, err, "polar_sampling")
}

func TestInfoCommand(t *testing.T) {
	path := writeSpec(t, `
geometry: so3
methods:
  - method: lebedev
    degree: 5
  - method: trapz
    size: 6
`)
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"info", path})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "size:       84")
	assert.Contains(t, out, "lebedev-laikov x composite-trapezoid")
}

func TestExportCommand_Stdout(t *testing.T) {
	path := writeSpec(t, `
geometry: s2
methods:
  - method: lebedev
    degree: 3
`)
	cmd := rootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"export", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "# s2 quadrature grid, 6 points")
	// 6 data rows plus header lines.
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.GreaterOrEqual(t, lines, 9)
}
