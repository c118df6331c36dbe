package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLargeDictInsertLookup(t *testing.T) {
	d := NewLargeDict(64)
	ok := d.Insert(12345, 7, 0.25)
	require.True(t, ok)

	got, found := d.Lookup(12345)
	require.True(t, found)
	assert.Equal(t, int32(7), got.ID)
	assert.Equal(t, 0.25, got.Prob)
}

func TestLargeDictLookupMiss(t *testing.T) {
	d := NewLargeDict(64)
	d.Insert(1, 1, 0.1)
	_, found := d.Lookup(2)
	assert.False(t, found)
}

func TestLargeDictZeroKeyRejected(t *testing.T) {
	d := NewLargeDict(64)
	assert.False(t, d.Insert(0, 1, 0.1))
	_, found := d.Lookup(0)
	assert.False(t, found)
}

func TestLargeDictOverwriteSameKey(t *testing.T) {
	d := NewLargeDict(64)
	d.Insert(99, 1, 0.1)
	d.Insert(99, 2, 0.2)
	got, found := d.Lookup(99)
	require.True(t, found)
	assert.Equal(t, int32(2), got.ID)
	assert.Equal(t, 1, d.Len())
}

func TestLargeDictHandlesCollisionsUpToCapacity(t *testing.T) {
	d := NewLargeDict(8)
	for i := uint64(1); i <= 8; i++ {
		require.True(t, d.Insert(i, int32(i), float64(i)))
	}
	for i := uint64(1); i <= 8; i++ {
		got, found := d.Lookup(i)
		require.True(t, found)
		assert.Equal(t, int32(i), got.ID)
	}
}

func TestExtendSignatureDeterministic(t *testing.T) {
	acc1 := uint64(0)
	acc2 := uint64(0)
	for r := 0; r < 3; r++ {
		acc1 = extendSignatureFake(r, acc1, 3)
		acc2 = extendSignatureFake(r, acc2, 3)
	}
	assert.Equal(t, acc1, acc2)
}

// extendSignatureFake folds ring r using a fixed concrete color code,
// exercising the same zobristWords table ExtendSignature uses without
// needing a live board.Position.
func extendSignatureFake(ring int, acc uint64, code uint8) uint64 {
	for i := range rings[ring] {
		acc ^= zobristWords[ring][i][code]
	}
	return acc
}
