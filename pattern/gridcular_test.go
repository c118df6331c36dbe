package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingsPartitionWithoutOverlap(t *testing.T) {
	seen := map[offset]int{}
	for ring, offs := range rings {
		for _, o := range offs {
			if prev, ok := seen[o]; ok {
				t.Fatalf("offset %v appears in both ring %d and ring %d", o, prev, ring)
			}
			seen[o] = ring
		}
	}
}

func TestRing0IsOrthogonalNeighbors(t *testing.T) {
	want := map[offset]bool{
		{0, 1}: true, {0, -1}: true, {1, 0}: true, {-1, 0}: true,
	}
	got := map[offset]bool{}
	for _, o := range rings[0] {
		got[o] = true
	}
	assert.Equal(t, want, got)
}

func TestGridcularDistanceMonotoneOutward(t *testing.T) {
	assert.Less(t, gridcularDistance(1, 0), gridcularDistance(2, 0))
	assert.Less(t, gridcularDistance(1, 1), gridcularDistance(2, 2))
}

func TestGridcularDistanceSymmetricUnderReflection(t *testing.T) {
	for dx := -5; dx <= 5; dx++ {
		for dy := -5; dy <= 5; dy++ {
			d := gridcularDistance(dx, dy)
			assert.Equal(t, d, gridcularDistance(-dx, dy))
			assert.Equal(t, d, gridcularDistance(dx, -dy))
			assert.Equal(t, d, gridcularDistance(dy, dx))
		}
	}
}
