package playout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
	"github.com/corvid/weiqi/rng"
)

func TestLastMovesNeighborsDedupesAndExcludesOut(t *testing.T) {
	g := board.NewGeometry(9)
	p := board.NewPosition(g, board.DefaultKomi)
	s := board.NewScratch(g)
	require.NoError(t, p.PlayMove(s, g.Pt(0, 0))) // corner: only 2 orth + 1 diag neighbor

	src := rng.New(1)
	out := lastMovesNeighbors(p, src)
	seen := map[board.Point]bool{}
	for _, pt := range out {
		assert.False(t, seen[pt], "duplicate neighbor %v", pt)
		seen[pt] = true
		assert.NotEqual(t, board.Out, p.Color(pt))
	}
}

func TestGenCaptureMovesFindsCaptureOfStoneInAtari(t *testing.T) {
	g := board.NewGeometry(9)
	p := board.NewPosition(g, board.DefaultKomi)
	s := board.NewScratch(g)

	// Build a one-stone atari: X plays center, O surrounds on 3 sides so the
	// 4th side is the capturing liberty genCaptureMoves should find once O
	// is to move.
	center := g.Pt(4, 4)
	require.NoError(t, p.PlayMove(s, center))          // X
	require.NoError(t, p.PlayMove(s, g.Pt(3, 4)))       // O
	require.NoError(t, p.PlayMove(s, g.Pt(0, 0)))       // X elsewhere
	require.NoError(t, p.PlayMove(s, g.Pt(4, 5)))       // O
	require.NoError(t, p.PlayMove(s, g.Pt(0, 1)))       // X elsewhere
	require.NoError(t, p.PlayMove(s, g.Pt(4, 3)))       // O, now center has one liberty
	require.NoError(t, p.PlayMove(s, g.Pt(0, 2)))       // X elsewhere, O to move

	set := []board.Point{g.Pt(4, 4), g.Pt(5, 4)}
	cands := genCaptureMoves(p, s, set, false)
	assert.NotEmpty(t, cands)
}

func TestGenPat3MovesOnlyEmptyMatches(t *testing.T) {
	g := board.NewGeometry(9)
	p := board.NewPosition(g, board.DefaultKomi)
	pat3 := pattern.CompilePat3()
	set := []board.Point{g.Pt(4, 4), g.Pt(4, 5)}
	out := genPat3Moves(p, set, pat3)
	for _, pt := range out {
		assert.Equal(t, board.Empty, p.Color(pt))
	}
}

func TestGenRandomMovesSkipsOwnEyes(t *testing.T) {
	g := board.NewGeometry(9)
	p := board.NewPosition(g, board.DefaultKomi)
	s := board.NewScratch(g)
	moves := []board.Point{g.Pt(3, 4), g.Pt(0, 0), g.Pt(5, 4), g.Pt(0, 1), g.Pt(4, 3), g.Pt(0, 2), g.Pt(4, 5), g.Pt(0, 3)}
	for _, m := range moves {
		require.NoError(t, p.PlayMove(s, m))
	}
	eye := g.Pt(4, 4)
	owner := board.IsEye(p, eye)
	require.NotEqual(t, board.Empty, owner)

	out := genRandomMoves(p, 0)
	if owner == board.ToPlay {
		for _, pt := range out {
			assert.NotEqual(t, eye, pt)
		}
	} else {
		assert.Contains(t, out, eye)
	}
}
