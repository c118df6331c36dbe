package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCFGDistancesZeroAtSource(t *testing.T) {
	g := NewGeometry(9)
	p := NewPosition(g, DefaultKomi)
	src := g.Pt(4, 4)
	dist := ComputeCFGDistances(p, src)
	assert.Equal(t, 0, dist[src])
}

func TestComputeCFGDistancesGrowsOutward(t *testing.T) {
	g := NewGeometry(9)
	p := NewPosition(g, DefaultKomi)
	src := g.Pt(4, 4)
	dist := ComputeCFGDistances(p, src)

	near := g.Pt(4, 5)
	far := g.Pt(4, 7)
	assert.Less(t, dist[near], dist[far])
}

func TestComputeCFGDistancesZeroWithinSameBlock(t *testing.T) {
	g := NewGeometry(9)
	p := NewPosition(g, DefaultKomi)
	s := NewScratch(g)
	a, b := g.Pt(4, 4), g.Pt(4, 5)
	if err := p.PlayMove(s, a); err != nil {
		t.Fatal(err)
	}
	_ = p.PlayMove(s, g.Pt(0, 0)) // opponent elsewhere
	if err := p.PlayMove(s, b); err != nil {
		t.Fatal(err)
	}

	dist := ComputeCFGDistances(p, a)
	assert.Equal(t, 0, dist[b])
}
