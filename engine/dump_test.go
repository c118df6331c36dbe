package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpTreeErrorsBeforeAnySearch(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	assert.Error(t, e.DumpTree(&buf))
}

func TestDumpTreeWritesDOTAfterGenMove(t *testing.T) {
	e := newTestEngine(t)
	e.GenMove()

	var buf bytes.Buffer
	require.NoError(t, e.DumpTree(&buf))
	assert.Contains(t, buf.String(), "digraph")
}
