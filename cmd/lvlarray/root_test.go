package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRotateCommand(t *testing.T) {
	out, logs, err := run(t, "rotate", "--sizes", "10,30", "--reps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "== rotate ==")
	assert.Contains(t, out, "reversals")
	assert.Contains(t, out, "1.00x")
	assert.Contains(t, logs, "sample")
}

func TestGrowthCommand_JSONLogs(t *testing.T) {
	out, logs, err := run(t, "growth", "--sizes", "100", "--reps", "1", "--json", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "doubling")
	assert.Contains(t, logs, `"msg":"grow"`)
}

func TestMultiplyCommand_SmallSizes(t *testing.T) {
	out, _, err := run(t, "multiply", "--sizes", "8", "--blocks", "4", "--workers", "2", "--reps", "1", "--log-level", "warn")
	require.NoError(t, err)
	for _, name := range []string{"naive", "tiled-4", "parallel-4", "cached-4"} {
		assert.Contains(t, out, name)
	}
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "rotate", "--log-level", "loud")
	require.Error(t, err)
}

func TestUnknownArgs(t *testing.T) {
	_, _, err := run(t, "rotate", "extra")
	require.Error(t, err)
}

func TestTraversalCommand_TwoTables(t *testing.T) {
	out, _, err := run(t, "traversal", "--sizes", "8,16", "--blocks", "4", "--reps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "== traversal ==")
	assert.Contains(t, out, "== rotate90 ==")
	for _, name := range []string{"col-wise", "row-wise", "untiled", "tiled-4"} {
		assert.Contains(t, out, name)
	}
}

func TestFrontInsertCommand_ReportsKnee(t *testing.T) {
	out, _, err := run(t, "front-insert", "--sizes", "10,100", "--reps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "== front-insert ==")
	assert.Contains(t, out, "knee: slice front insert")
}
