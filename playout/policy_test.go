package playout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
	"github.com/corvid/weiqi/rng"
)

func TestRunTerminatesWithinMaxGameLen(t *testing.T) {
	g := board.NewGeometry(5)
	p := board.NewPosition(g, board.DefaultKomi)
	s := board.NewScratch(g)
	pol := &Policy{Pat3: pattern.CompilePat3(), RNG: rng.New(1)}

	result := pol.Run(p, s)
	assert.Len(t, result.AMAF, g.Size)
	assert.Len(t, result.Owner, g.Size)
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	g := board.NewGeometry(5)
	p := board.NewPosition(g, board.DefaultKomi)
	s1, s2 := board.NewScratch(g), board.NewScratch(g)

	pol1 := &Policy{Pat3: pattern.CompilePat3(), RNG: rng.New(7)}
	pol2 := &Policy{Pat3: pattern.CompilePat3(), RNG: rng.New(7)}

	r1 := pol1.Run(p, s1)
	r2 := pol2.Run(p, s2)
	assert.Equal(t, r1.Score, r2.Score)
	assert.Equal(t, r1.AMAF, r2.AMAF)
}

func TestRunDoesNotMutateStartPosition(t *testing.T) {
	g := board.NewGeometry(5)
	p := board.NewPosition(g, board.DefaultKomi)
	s := board.NewScratch(g)
	pol := &Policy{Pat3: pattern.CompilePat3(), RNG: rng.New(3)}

	before := p.Clone()
	pol.Run(p, s)
	assert.Equal(t, before.N, p.N)
}
