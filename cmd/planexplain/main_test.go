package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plan = `
tables:
  - name: emp
    columns:
      - {name: id, type: int}
      - {name: age, type: int}
plan:
  sort:
    collations: [{field: 1, direction: desc}]
    input: {scan: {table: emp}}
`

func writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))
	return path
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	err := run(config{planFile: writePlan(t), format: "text"}, &out, log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "Sort(sort0=[$1], dir0=[DESC])\n  SeqScan(table=[emp])\n", out.String())
}

func TestRunDigest(t *testing.T) {
	var out bytes.Buffer
	err := run(config{planFile: writePlan(t), format: "digest"}, &out, log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "Sort.NONE.[](child=[SeqScan.NONE.[](table=[emp])], sort0=[$1], dir0=[DESC])\n", out.String())
}

func TestRunMissingFile(t *testing.T) {
	err := run(config{planFile: filepath.Join(t.TempDir(), "absent.yaml")}, &bytes.Buffer{}, log.NewNopLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")
	var out bytes.Buffer
	require.NoError(t, run(config{planFile: writePlan(t), format: "text"}, &out, logger))
	assert.Empty(t, buf.String(), "info messages must be filtered at warn level")

	buf.Reset()
	logger = newLogger(&buf, "debug")
	require.NoError(t, run(config{planFile: writePlan(t), format: "text"}, &out, logger))
	assert.Contains(t, buf.String(), "plan built")
	assert.Contains(t, buf.String(), "level=debug")
}
