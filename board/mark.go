package board

// Mark is a per-board generation-counter set: Reset is amortized O(1) since
// it only bumps a counter instead of clearing the backing array, and
// membership is a single comparison.
type Mark struct {
	gen  uint32
	tags []uint32
}

// NewMark allocates a Mark sized for the given geometry.
func NewMark(g Geometry) *Mark {
	return &Mark{tags: make([]uint32, g.Size)}
}

// Reset starts a new, empty generation.
func (m *Mark) Reset() {
	m.gen++
	if m.gen == 0 {
		// Wrapped around: the stale tags could alias the new generation 0,
		// so force a real clear this one time.
		for i := range m.tags {
			m.tags[i] = 0
		}
		m.gen = 1
	}
}

// Mark records p as a member of the current generation.
func (m *Mark) Mark(p Point) {
	m.tags[p] = m.gen
}

// IsMarked reports whether p belongs to the current generation.
func (m *Mark) IsMarked(p Point) bool {
	return m.tags[p] == m.gen
}
