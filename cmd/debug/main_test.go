package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid/weiqi/engine"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.BoardSize = 5
	cfg.NumSimulations = 10
	cfg.LogPath = filepath.Join(t.TempDir(), "test.log")
	e, err := engine.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestRunBenchWritesSummaryLine(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	require.NoError(t, run(e, "bench", 4, &buf))
	assert.Contains(t, buf.String(), "n=4")
}

func TestRunDumpWritesDOT(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	require.NoError(t, run(e, "dump", 0, &buf))
	assert.Contains(t, buf.String(), "digraph")
}

func TestRunAssertPassesOnFreshEngine(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	assert.NoError(t, run(e, "assert", 0, &buf))
}

func TestRunUnknownSubcommandReturnsError(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	err := run(e, "bogus", 0, &buf)
	assert.ErrorIs(t, err, errUnknownSubcommand)
}
