// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "../../batch/testdata/sample.yaml"

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err = app.Run(append([]string{"oneloop", "--nocolor"}, args...))
	return out.String(), errOut.String(), err
}

func TestEval_Table(t *testing.T) {
	out, _, err := run(t, "eval", "--x", "1", "--y", "1", "--s-re", "5", "--explain", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "Branch")
	assert.Contains(t, out, "1.56959105904")
	assert.Contains(t, out, "1.40496294621")
	assert.Contains(t, out, "general")
	assert.Contains(t, out, "ok")
}

func TestEval_UnusedParamsDashed(t *testing.T) {
	out, _, err := run(t, "eval", "--s-re", "-1", "b00")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	var row string
	for _, l := range lines {
		if strings.Contains(l, "B00") {
			row = l
		}
	}
	require.NotEmpty(t, row)
	assert.Contains(t, row, " - ")
	assert.Contains(t, row, " 2 ")
	assert.NotContains(t, out, "Branch")
}

func TestEval_Undefined(t *testing.T) {
	out, logs, err := run(t, "eval", "--x", "1", "--y", "1", "--s-re", "4", "dBds")
	require.NoError(t, err)
	assert.Contains(t, out, "undefined")
	assert.Contains(t, out, "+Inf")
	assert.Contains(t, logs, "undefined basis integral")
	assert.Contains(t, logs, "dBds(x,y) is undefined at threshold.")
}

func TestEval_QuietBelowWarn(t *testing.T) {
	_, logs, err := run(t, "--verbosity", "2", "eval", "--x", "0", "Ap")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestEval_InputErrors(t *testing.T) {
	_, _, err := run(t, "eval")
	assert.ErrorIs(t, err, errNoFunc)

	_, _, err = run(t, "eval", "C0")
	assert.ErrorContains(t, err, "unknown function")

	_, _, err = run(t, "eval", "--x", "1", "--qq", "-1", "A")
	assert.ErrorContains(t, err, "--qq")

	_, _, err = run(t, "--verbosity", "9", "eval", "A")
	assert.Error(t, err)

	_, _, err = run(t, "--tol", "0", "eval", "A")
	assert.Error(t, err)
}

func TestBatch_Table(t *testing.T) {
	out, _, err := run(t, "batch", "--workers", "3", sample)
	require.NoError(t, err)
	assert.Contains(t, out, "mismatch")
	assert.Contains(t, out, "undefined")
	assert.Contains(t, out, "threshold")
	assert.Contains(t, out, "Beps")
}

func TestBatch_YAML(t *testing.T) {
	out, _, err := run(t, "batch", "--output", "yaml", sample)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "results:"))
	assert.Contains(t, out, "mismatch: true")
}

func TestBatch_Strict(t *testing.T) {
	_, _, err := run(t, "batch", "--strict", sample)
	assert.ErrorIs(t, err, errMismatch)
}

func TestBatch_Errors(t *testing.T) {
	_, _, err := run(t, "batch")
	assert.Error(t, err)

	_, _, err = run(t, "batch", "does-not-exist.yaml")
	assert.Error(t, err)

	_, _, err = run(t, "batch", "--output", "json", sample)
	assert.ErrorContains(t, err, "--output")
}

func TestFuncs(t *testing.T) {
	out, _, err := run(t, "funcs")
	require.NoError(t, err)
	assert.Contains(t, out, "BprimeAtZero")
	assert.Contains(t, out, "[x y s qq]")
}
