package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerMapTerritoryIsZeroBeforeAnySample(t *testing.T) {
	o := NewOwnerMap(9)
	territory := o.Territory()
	assert.Len(t, territory, 9)
	for _, v := range territory {
		assert.Equal(t, float32(0), v)
	}
}

func TestOwnerMapAveragesSamples(t *testing.T) {
	o := NewOwnerMap(3)
	require.NoError(t, o.Add([]float32{1, -1, 0}))
	require.NoError(t, o.Add([]float32{1, 1, 0}))

	territory := o.Territory()
	assert.InDelta(t, 1.0, territory[0], 1e-6)
	assert.InDelta(t, 0.0, territory[1], 1e-6)
	assert.InDelta(t, 0.0, territory[2], 1e-6)
}
