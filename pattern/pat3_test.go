package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompilePat3NonEmpty(t *testing.T) {
	s := CompilePat3()
	n := s.Cardinality()
	assert.Greater(t, n, 0)
	assert.Less(t, n, Pat3Bits)
}

func TestPat3MatchIsSymmetric(t *testing.T) {
	s := CompilePat3()
	// "enclosing hane": X O X / . . . / ? ? ? with the center empty.
	concrete := [9]byte{'X', 'O', 'X', '.', '.', '.', '.', '.', '.'}
	env8 := env8Of(concrete)
	assert.True(t, s.Match(env8))

	for _, variant := range symmetryClosure(concrete) {
		assert.True(t, s.Match(env8Of(variant)), "variant %s should match", variant)
	}
}

func TestPat3NoMatchOnUnrelatedShape(t *testing.T) {
	s := CompilePat3()
	// all empty neighborhood does not match any hand-written shape.
	allEmpty := [9]byte{'.', '.', '.', '.', '.', '.', '.', '.', '.'}
	assert.False(t, s.Match(env8Of(allEmpty)))
}

func TestCardinalityCountsSetBits(t *testing.T) {
	s := &Pat3Set{}
	assert.Equal(t, 0, s.Cardinality())
	s.set(0)
	s.set(65)
	assert.Equal(t, 2, s.Cardinality())
}
