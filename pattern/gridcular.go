// Package pattern implements the 3x3 local-shape matcher and the
// large-pattern Zobrist dictionary used to bias playouts and MCTS priors.
package pattern

// NumRings is the number of concentric gridcular neighborhoods a large
// pattern signature is built from.
const NumRings = 12

type offset struct{ dx, dy int }

// gridcularDistance is the metric michi-family engines use to group board
// offsets into concentric "rings" around a point: it grows faster along
// the diagonals than plain Chebyshev distance, which is what gives the
// resulting neighborhoods their octagonal rather than square shape. It is
// symmetric under every member of the 8-element dihedral group by
// construction, so rings built from it never need a separate symmetry
// pass.
func gridcularDistance(dx, dy int) int {
	adx, ady := abs(dx), abs(dy)
	m := adx
	if ady > m {
		m = ady
	}
	return adx + ady + m
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rings holds, for ring index 0..NumRings-1, the (dx,dy) offsets whose
// gridcular distance places them in that ring, sorted for determinism.
// Ring 0 is the four orthogonal neighbors, ring 1 adds the diagonals, and
// so on outward. The 12 rings hold 120 offsets in all and the widest
// reaches a Chebyshev radius of 6; no offset lies 7 or more points away.
// Offsets that fall off the board read as Out (see colorCodeAt).
var rings = buildRings()

func buildRings() [NumRings][]offset {
	const maxCoord = 8
	byDist := map[int][]offset{}
	var dists []int
	seen := map[int]bool{}
	for dx := -maxCoord; dx <= maxCoord; dx++ {
		for dy := -maxCoord; dy <= maxCoord; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := gridcularDistance(dx, dy)
			byDist[d] = append(byDist[d], offset{dx, dy})
			if !seen[d] {
				seen[d] = true
				dists = append(dists, d)
			}
		}
	}
	// insertion sort: dists has at most a few dozen entries
	for i := 1; i < len(dists); i++ {
		v := dists[i]
		j := i - 1
		for j >= 0 && dists[j] > v {
			dists[j+1] = dists[j]
			j--
		}
		dists[j+1] = v
	}

	var out [NumRings][]offset
	for i := 0; i < NumRings; i++ {
		ring := byDist[dists[i]]
		for a := 0; a < len(ring); a++ {
			for b := a + 1; b < len(ring); b++ {
				if ring[b].dx < ring[a].dx || (ring[b].dx == ring[a].dx && ring[b].dy < ring[a].dy) {
					ring[a], ring[b] = ring[b], ring[a]
				}
			}
		}
		out[i] = ring
	}
	return out
}

// MaxRadius is the largest Chebyshev offset any ring reaches.
const MaxRadius = 6
