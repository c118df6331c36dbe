package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid/weiqi/board"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BoardSize = 5
	cfg.NumSimulations = 20
	cfg.LogPath = filepath.Join(t.TempDir(), "test.log")

	e, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestNewBuildsEmptyBoard(t *testing.T) {
	e := newTestEngine(t)
	g := e.Geometry()
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			assert.Equal(t, board.Empty, e.Position().Color(g.Pt(row, col)))
		}
	}
}

func TestPlayAndUndoRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	pt := e.Geometry().Pt(2, 2)
	require.NoError(t, e.Play(pt))
	assert.NotEqual(t, board.Empty, e.Position().Color(pt))

	require.NoError(t, e.Undo())
	assert.Equal(t, board.Empty, e.Position().Color(pt))
}

func TestClearBoardResetsCaptureTotal(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Play(e.Geometry().Pt(2, 2)))
	e.ClearBoard()
	assert.Equal(t, 0, e.totalCaptured)
}

func TestGenMoveReturnsAMoveOrPass(t *testing.T) {
	e := newTestEngine(t)
	result := e.GenMove()
	assert.GreaterOrEqual(t, result.Iterations, 1)
}

func TestPlayIllegalMoveReportsError(t *testing.T) {
	e := newTestEngine(t)
	pt := e.Geometry().Pt(2, 2)
	require.NoError(t, e.Play(pt))
	assert.Error(t, e.Play(pt))
}
