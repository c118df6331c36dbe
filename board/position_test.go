package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPosition(n int) (*Position, Geometry, *Scratch) {
	g := NewGeometry(n)
	return NewPosition(g, DefaultKomi), g, NewScratch(g)
}

func TestEmptyBoardIsAllEmpty(t *testing.T) {
	p, g, _ := newTestPosition(9)
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			assert.Equal(t, Empty, p.Color(g.Pt(row, col)))
		}
	}
}

func TestPlayMoveOccupiedIsIllegal(t *testing.T) {
	p, g, s := newTestPosition(9)
	pt := g.Pt(4, 4)
	require.NoError(t, p.PlayMove(s, pt))
	err := p.PlayMove(s, pt)
	assert.Error(t, err)
}

func TestPlayMoveSwapsToPlay(t *testing.T) {
	p, g, s := newTestPosition(9)
	pt := g.Pt(4, 4)
	require.NoError(t, p.PlayMove(s, pt))
	// after the move, the board is swap-cased so to-play is always X;
	// the stone just placed now belongs to the opponent's view.
	assert.Equal(t, Opponent, p.Color(pt))
}

func TestSingleStoneCapture(t *testing.T) {
	p, g, s := newTestPosition(9)
	// Surround one white stone at (4,4) with four black stones, alternating
	// turns so each play is legal.
	center := g.Pt(4, 4)
	require.NoError(t, p.PlayMove(s, center)) // X plays center

	north := g.Pt(3, 4)
	south := g.Pt(5, 4)
	east := g.Pt(4, 5)
	west := g.Pt(4, 3)
	elsewhere := []Point{g.Pt(0, 0), g.Pt(0, 1), g.Pt(0, 2)}

	require.NoError(t, p.PlayMove(s, north))        // O plays north
	require.NoError(t, p.PlayMove(s, elsewhere[0]))  // X elsewhere
	require.NoError(t, p.PlayMove(s, south))        // O plays south
	require.NoError(t, p.PlayMove(s, elsewhere[1]))  // X elsewhere
	require.NoError(t, p.PlayMove(s, east))         // O plays east
	require.NoError(t, p.PlayMove(s, elsewhere[2]))  // X elsewhere
	require.NoError(t, p.PlayMove(s, west))         // O plays west, captures

	assert.Equal(t, Empty, p.Color(center))
	assert.Equal(t, 1, p.LastCaptureCount)
	assert.Equal(t, center, p.LastCapture)
}

func TestSuicideIsIllegal(t *testing.T) {
	p, g, s := newTestPosition(9)
	corner := g.Pt(0, 0)
	n1 := g.Pt(0, 1)
	n2 := g.Pt(1, 0)

	require.NoError(t, p.PlayMove(s, n1))       // X plays n1
	require.NoError(t, p.PlayMove(s, g.Pt(8, 8))) // O plays elsewhere
	require.NoError(t, p.PlayMove(s, n2))       // X plays n2; corner's only neighbors are now Opponent

	err := p.PlayMove(s, corner)
	assert.Error(t, err)
}

func TestUndoSingleCaptureRestoresBoard(t *testing.T) {
	p, g, s := newTestPosition(9)
	center := g.Pt(4, 4)
	require.NoError(t, p.PlayMove(s, center))

	before := p.Clone()

	require.NoError(t, p.PlayMove(s, g.Pt(3, 4)))
	require.NoError(t, p.UndoMove())

	assert.Equal(t, before.Color(center), p.Color(center))
	assert.Equal(t, before.N, p.N)
	assert.Equal(t, before.LastCapture, p.LastCapture)
	assert.Equal(t, before.LastCaptureCount, p.LastCaptureCount)
}

func TestUndoPassRestoresState(t *testing.T) {
	p, g, _ := newTestPosition(9)
	_ = g
	before := p.Clone()
	p.PassMove()
	require.NoError(t, p.UndoMove())
	assert.Equal(t, before.N, p.N)
	assert.Equal(t, before.Last, p.Last)
}

func TestComputeEnv4MatchesIncrementalCache(t *testing.T) {
	p, g, s := newTestPosition(9)
	require.NoError(t, p.PlayMove(s, g.Pt(4, 4)))
	require.NoError(t, p.PlayMove(s, g.Pt(4, 5)))
	require.NoError(t, p.PlayMove(s, g.Pt(3, 4)))

	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			pt := g.Pt(row, col)
			wantE4, wantE4d := p.ComputeEnv4(pt)
			gotE4, gotE4d := p.Env4Raw(pt)
			assert.Equal(t, wantE4, gotE4, "env4 mismatch at %v", pt)
			assert.Equal(t, wantE4d, gotE4d, "env4d mismatch at %v", pt)
		}
	}
}

func TestIsEyeDetectsSimpleEye(t *testing.T) {
	p, g, s := newTestPosition(9)
	// Black stones form a diamond around (4,4), leaving it an eye.
	moves := []Point{g.Pt(3, 4), g.Pt(0, 0), g.Pt(5, 4), g.Pt(0, 1), g.Pt(4, 3), g.Pt(0, 2), g.Pt(4, 5), g.Pt(0, 3)}
	for _, m := range moves {
		require.NoError(t, p.PlayMove(s, m))
	}
	eye := g.Pt(4, 4)
	assert.NotEqual(t, Empty, IsEye(p, eye))
}

func TestCloneIsIndependent(t *testing.T) {
	p, g, s := newTestPosition(9)
	require.NoError(t, p.PlayMove(s, g.Pt(0, 0)))
	clone := p.Clone()
	require.NoError(t, p.PlayMove(s, g.Pt(1, 1)))
	assert.NotEqual(t, p.Color(g.Pt(1, 1)), clone.Color(g.Pt(1, 1)))
}
