package pattern

import (
	"math/bits"

	"github.com/corvid/weiqi/board"
)

// Pat3Bits is the size of the 3x3 pattern membership set: one bit per
// possible env8 neighborhood value.
const Pat3Bits = 1 << 16

// Pat3Set is a compiled 65536-bit membership set over env8 values, one bit
// per concrete neighborhood that matches a hand-written 3x3 shape.
type Pat3Set struct {
	bits [Pat3Bits / 64]uint64
}

func (s *Pat3Set) set(env8 uint16) {
	s.bits[env8>>6] |= 1 << (env8 & 63)
}

// Match reports whether env8 (as returned by Position.Env8) belongs to the
// compiled set.
func (s *Pat3Set) Match(env8 uint16) bool {
	return s.bits[env8>>6]&(1<<(env8&63)) != 0
}

// MatchPoint is a convenience wrapper over Position.Env8.
func (s *Pat3Set) MatchPoint(p *board.Position, pt board.Point) bool {
	return s.Match(p.Env8(pt))
}

// Cardinality counts the set bits in the compiled table, for sanity-checking
// that compilation produced a nonempty, non-degenerate set.
func (s *Pat3Set) Cardinality() int {
	n := 0
	for _, word := range s.bits {
		n += bits.OnesCount64(word)
	}
	return n
}

// pat3Templates is the hand-written seed list every compiled 3x3 pattern
// grows from. Each entry is 9 characters, row-major top-left to
// bottom-right, center included for readability though it plays no part
// in matching (the matcher only ever looks at env8, the 8 neighbors of an
// empty point). Alphabet: X to-move, O other, . empty, # off-board,
// x "not X" (O, empty or off-board), o "not O", ? any of the four.
var pat3Templates = []string{
	"XOX" +
		"..." +
		"???", // enclosing hane

	"XO." +
		"..." +
		"?.?", // non-cutting hane

	"XO?" +
		"X.." +
		"x.?", // magari, the hane that turns

	"XOO" +
		"..." +
		"?.?", // thin hane against two stones

	".O." +
		"X.." +
		"...", // diagonal attachment / katatsuke

	"XO?" +
		"O.o" +
		"?o?", // cut1, the stones can be cut cleanly

	"XO?" +
		"O.X" +
		"???", // cut1, alternate side

	"?X?" +
		"O.O" +
		"ooo", // cut2, double hane behind a cut

	"OX?" +
		"o.O" +
		"???", // cutting keima

	"X.?" +
		"O.?" +
		"##?", // edge: chase along the first line

	"O.X" +
		"..." +
		"###", // edge: block on the first line

	"#?#" +
		"o.O" +
		"###", // edge: take the corner of an edge shape
}

// CompilePat3 expands the seed templates through wildcard resolution and
// the 16-element symmetry closure (8 board symmetries, each with and
// without a color swap) into a complete membership set.
func CompilePat3() *Pat3Set {
	s := &Pat3Set{}
	for _, t := range pat3Templates {
		if len(t) != 9 {
			panic("pattern: pat3 template must be exactly 9 characters: " + t)
		}
		expandWildcards([]byte(t), 0, func(concrete [9]byte) {
			for _, variant := range symmetryClosure(concrete) {
				s.set(env8Of(variant))
			}
		})
	}
	return s
}

var wildcardAlphabet = map[byte][]byte{
	'x': {'O', '.', '#'},
	'o': {'X', '.', '#'},
	'?': {'X', 'O', '.', '#'},
}

func expandWildcards(t []byte, i int, emit func([9]byte)) {
	if i == len(t) {
		var out [9]byte
		copy(out[:], t)
		emit(out)
		return
	}
	if alts, wild := wildcardAlphabet[t[i]]; wild {
		for _, c := range alts {
			cp := append([]byte(nil), t...)
			cp[i] = c
			expandWildcards(cp, i+1, emit)
		}
		return
	}
	expandWildcards(t, i+1, emit)
}

// dihedralPerms permutes 3x3 grid positions (row-major 0..8) for each of
// the 8 symmetries of the square: identity, two diagonal reflections, the
// horizontal and vertical reflections, and the three non-trivial
// rotations.
var dihedralPerms = [8][9]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8}, // identity
	{6, 3, 0, 7, 4, 1, 8, 5, 2}, // rotate 90
	{8, 7, 6, 5, 4, 3, 2, 1, 0}, // rotate 180
	{2, 5, 8, 1, 4, 7, 0, 3, 6}, // rotate 270
	{2, 1, 0, 5, 4, 3, 8, 7, 6}, // flip horizontal
	{6, 7, 8, 3, 4, 5, 0, 1, 2}, // flip vertical
	{0, 3, 6, 1, 4, 7, 2, 5, 8}, // transpose
	{8, 5, 2, 7, 4, 1, 6, 3, 0}, // anti-transpose
}

func swapColorsOf(c byte) byte {
	switch c {
	case 'X':
		return 'O'
	case 'O':
		return 'X'
	default:
		return c
	}
}

// symmetryClosure returns the set of distinct 9-char patterns reachable
// from t via the 8 board symmetries combined with an optional color swap.
func symmetryClosure(t [9]byte) [][9]byte {
	seen := map[[9]byte]bool{}
	var out [][9]byte
	for _, perm := range dihedralPerms {
		var rotated, swapped [9]byte
		for i, src := range perm {
			rotated[i] = t[src]
			swapped[i] = swapColorsOf(t[src])
		}
		if !seen[rotated] {
			seen[rotated] = true
			out = append(out, rotated)
		}
		if !seen[swapped] {
			seen[swapped] = true
			out = append(out, swapped)
		}
	}
	return out
}

func charCode(c byte) uint16 {
	switch c {
	case '.':
		return 0
	case '#':
		return 1
	case 'O':
		return 2
	case 'X':
		return 3
	default:
		panic("pattern: non-concrete character in compiled pat3 template")
	}
}

// env8Of computes the env8 a Position would report for an empty point
// whose 3x3 neighborhood matches t. Grid positions follow the row-major
// layout documented on pat3Templates; the orthogonal/diagonal slot order
// matches board.Geometry's Orth/Diag arrays (N,S,E,W and NE,SW,NW,SE).
func env8Of(t [9]byte) uint16 {
	n, s, e, w := charCode(t[1]), charCode(t[7]), charCode(t[5]), charCode(t[3])
	ne, sw, nw, se := charCode(t[2]), charCode(t[6]), charCode(t[0]), charCode(t[8])
	env4 := n | s<<2 | e<<4 | w<<6
	env4d := ne | sw<<2 | nw<<4 | se<<6
	return env4 | env4d<<8
}
