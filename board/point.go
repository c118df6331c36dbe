// Package board implements the Go board representation, move legality,
// capture, ko, tactical (atari/ladder/eye) analysis and the common-fate-graph
// distance used to bias search priors.
package board

import "fmt"

// Point is an index into a Position's flattened color array. Two sentinel
// values outside the valid index range stand for the non-board moves.
type Point int32

// PASS and Resign are not board points; they are returned by move-choosing
// code and must never be used to index a Position's arrays.
const (
	PASS   Point = -1
	Resign Point = -2
)

// Color is the occupant of a point.
type Color byte

const (
	Empty    Color = '.'
	ToPlay   Color = 'X' // the side whose turn it currently is
	Opponent Color = 'x' // the other side
	Out      Color = '#' // border sentinel, never a legal move target
)

func (c Color) String() string { return string(rune(c)) }

// code maps a Color onto the 2-bit alphabet used by both the env4/env4d
// neighborhood caches and the large-pattern Zobrist hash: EMPTY=0, OUT=1,
// OTHER=2, OURS=3. Keeping the two encodings identical lets pattern code
// share one lookup.
// Code is the exported form of code, used by the pattern package to share
// the same EMPTY/OUT/OTHER/OURS alphabet for its Zobrist hashing.
func (c Color) Code() uint8 { return c.code() }

func (c Color) code() uint8 {
	switch c {
	case Empty:
		return 0
	case Out:
		return 1
	case Opponent:
		return 2
	case ToPlay:
		return 3
	default:
		panic(fmt.Sprintf("board: invalid color %q", byte(c)))
	}
}

// swapped returns the color as seen by the other side: stones flip
// identity, empty and out are unaffected.
func (c Color) swapped() Color {
	switch c {
	case ToPlay:
		return Opponent
	case Opponent:
		return ToPlay
	default:
		return c
	}
}

// Geometry describes the fixed layout of an N x N board flattened into a
// 1-D array with a one-point-wide OUT border, so that every one of the 8
// neighbor offsets of any valid in-bounds point lands inside the array
// without an edge test. Offsets are derived once from N.
type Geometry struct {
	N    int // board side, e.g. 9, 13, 19
	W    int // row stride
	Size int // length of the flattened array

	// Orthogonal neighbor deltas, paired so that opposite directions sit
	// at indices i and i^1: North, South, East, West.
	Orth [4]Point
	// Diagonal neighbor deltas, paired the same way: NE, SW, NW, SE.
	Diag [4]Point
}

// NewGeometry computes the board geometry for side length n.
func NewGeometry(n int) Geometry {
	w := n + 1
	g := Geometry{
		N:    n,
		W:    w,
		Size: w*(n+2) + 1,
	}
	wp := Point(w)
	g.Orth = [4]Point{-wp, wp, 1, -1}
	g.Diag = [4]Point{-wp + 1, wp - 1, -wp - 1, wp + 1}
	return g
}

// Pt converts zero-based (row, col) board coordinates, row 0 at the top,
// into a Point index.
func (g Geometry) Pt(row, col int) Point {
	return Point((row+1)*g.W + col + 1)
}

// RowCol is the inverse of Pt.
func (g Geometry) RowCol(p Point) (row, col int) {
	row = int(p)/g.W - 1
	col = int(p)%g.W - 1
	return
}

// InBoard reports whether (row, col) names a playable square (not the
// border).
func (g Geometry) InBoard(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// OnEdge reports whether p is on the outermost ring of playable points.
func (g Geometry) OnEdge(p Point) bool {
	row, col := g.RowCol(p)
	return row == 0 || col == 0 || row == g.N-1 || col == g.N-1
}
