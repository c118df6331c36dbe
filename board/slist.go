package board

// Slist is a bounded list of points, the workhorse scratch structure for
// block/liberty enumeration, capture lists and playout move candidates.
// It intentionally wraps a plain slice rather than a fixed-capacity array:
// callers that know a bound (e.g. "at most 4 liberties") pre-allocate with
// that capacity so no further allocation happens on the hot path.
type Slist struct {
	Points []Point
}

// NewSlist allocates an empty Slist with the given capacity hint.
func NewSlist(capacity int) *Slist {
	return &Slist{Points: make([]Point, 0, capacity)}
}

// Len returns the number of points currently held.
func (s *Slist) Len() int { return len(s.Points) }

// Reset empties the list without releasing its backing array.
func (s *Slist) Reset() { s.Points = s.Points[:0] }

// Push appends p unconditionally.
func (s *Slist) Push(p Point) { s.Points = append(s.Points, p) }

// Contains does a linear scan for p.
func (s *Slist) Contains(p Point) bool {
	for _, q := range s.Points {
		if q == p {
			return true
		}
	}
	return false
}

// InsertUnique appends p only if it is not already present, returning
// whether it was inserted.
func (s *Slist) InsertUnique(p Point) bool {
	if s.Contains(p) {
		return false
	}
	s.Push(p)
	return true
}

// ForEach calls f for every point in order.
func (s *Slist) ForEach(f func(Point)) {
	for _, p := range s.Points {
		f(p)
	}
}
