package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestUint32MatchesLCGFormula(t *testing.T) {
	s := New(1)
	want := uint32(1)*lcgMultiplier + lcgIncrement
	assert.Equal(t, want, s.Uint32())
}

func TestIntnInRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		n := s.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestIntnPanicsOnNonPositive(t *testing.T) {
	s := New(1)
	assert.Panics(t, func() { s.Intn(0) })
}

func TestFloat32InUnitRange(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		f := s.Float32()
		assert.GreaterOrEqual(t, f, float32(0))
		assert.Less(t, f, float32(1))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := New(5)
	sl := []int{0, 1, 2, 3, 4, 5, 6, 7}
	orig := append([]int(nil), sl...)
	Shuffle(s, sl)

	assert.ElementsMatch(t, orig, sl)
}

func TestSeedResetsStream(t *testing.T) {
	s := New(123)
	first := s.Uint32()
	s.Seed(123)
	assert.Equal(t, first, s.Uint32())
}
