package board

import (
	"github.com/pkg/errors"
)

// DefaultKomi is the compensation given to the second player.
const DefaultKomi = 7.5

// NoKo is the sentinel stored in Position.Ko when no point is currently
// forbidden. It is never a playable point: index 0 always falls on the
// border.
const NoKo Point = 0

// swapTable maps an env4/env4d byte to its value after the board's
// to-play/opponent colors are exchanged: each 2-bit slot toggles between
// code 2 (Opponent) and code 3 (ToPlay) and leaves 0 (Empty) / 1 (Out)
// alone. Precomputed once since there are only 256 possible bytes.
var swapTable = func() (t [256]uint8) {
	for b := 0; b < 256; b++ {
		v := uint8(b)
		var out uint8
		for slot := 0; slot < 4; slot++ {
			shift := uint(slot * 2)
			code := (v >> shift) & 3
			switch code {
			case 2:
				code = 3
			case 3:
				code = 2
			}
			out |= code << shift
		}
		t[b] = out
	}
	return
}()

func setSlot(e uint8, slot int, code uint8) uint8 {
	shift := uint(slot * 2)
	mask := uint8(3) << shift
	return (e &^ mask) | (code << shift)
}

// undoState is enough of the previous ply to reverse it, provided that ply
// captured at most one stone. See the doc comment on UndoMove.
type undoState struct {
	valid bool
	pass  bool

	point          Point
	capturedCount  int
	capturedPoint  Point
	prevKo, prevKoOld         Point
	prevLast, prevLast2, prevLast3 Point
	prevN                     int
	prevCap, prevCapX         int
	prevLastCapture           Point
	prevLastCaptureCount      int
}

// Position is the mutable state of one board. The color array always
// reads "to-play is X": after every successful move the whole board is
// swap-cased so the side to move is consistently X, which is why the
// capture counters are swapped too (see PlayMove and PassMove).
type Position struct {
	Geom Geometry

	color []Color
	env4  []uint8
	env4d []uint8

	N int // zero-based ply count

	Ko, KoOld          Point
	Last, Last2, Last3 Point

	Cap, CapX int // captures by opponent, by to-play — swapped each move

	Komi float64

	// LastCapture is the point of the most recent single-stone capture, or
	// NoKo if the last move captured zero or more than one stone. It
	// belongs on PlayMove's result per the design note in spec §9; it is
	// also cached here for convenience.
	LastCapture Point

	// LastCaptureCount is how many stones the last move captured (0 if
	// none), so callers can distinguish a one-stone capture from a
	// multi-stone one without re-deriving it from LastCapture.
	LastCaptureCount int

	undo undoState
}

// NewPosition creates an empty position with an OUT border.
func NewPosition(geom Geometry, komi float64) *Position {
	p := &Position{
		Geom:  geom,
		color: make([]Color, geom.Size),
		env4:  make([]uint8, geom.Size),
		env4d: make([]uint8, geom.Size),
		Komi:  komi,
	}
	p.Reset()
	return p
}

// Reset reinitializes the position to an empty board, OUT borders filled,
// counters cleared.
func (p *Position) Reset() {
	for i := range p.color {
		p.color[i] = Out
	}
	for row := 0; row < p.Geom.N; row++ {
		for col := 0; col < p.Geom.N; col++ {
			p.color[p.Geom.Pt(row, col)] = Empty
		}
	}
	p.rebuildEnv()
	p.N = 0
	p.Ko, p.KoOld = NoKo, NoKo
	p.Last, p.Last2, p.Last3 = PASS, PASS, PASS
	p.Cap, p.CapX = 0, 0
	p.LastCapture = NoKo
	p.LastCaptureCount = 0
	p.undo = undoState{}
}

// Clone makes a deep, independent copy. This is the allocation playouts
// and MCTS node construction pay on every simulation; the backing arrays
// are sized once and copied, never re-walked cell by cell.
func (p *Position) Clone() *Position {
	n := &Position{
		Geom:        p.Geom,
		color:       append([]Color(nil), p.color...),
		env4:        append([]uint8(nil), p.env4...),
		env4d:       append([]uint8(nil), p.env4d...),
		N:           p.N,
		Ko:          p.Ko,
		KoOld:       p.KoOld,
		Last:        p.Last,
		Last2:       p.Last2,
		Last3:       p.Last3,
		Cap:         p.Cap,
		CapX:        p.CapX,
		Komi:             p.Komi,
		LastCapture:      p.LastCapture,
		LastCaptureCount: p.LastCaptureCount,
		undo:             p.undo,
	}
	return n
}

// Color returns the occupant of pt.
func (p *Position) Color(pt Point) Color { return p.color[pt] }

// Env4Raw returns the live, incrementally maintained env4/env4d cache for
// pt, for invariant checking against ComputeEnv4.
func (p *Position) Env4Raw(pt Point) (env4, env4d uint8) {
	return p.env4[pt], p.env4d[pt]
}

// ComputeEnv4 rebuilds what pt's env4/env4d ought to be directly from the
// color array, without touching the cached values. Used by
// engine.AssertInvariants to check the cache-maintenance invariant in
// spec §8 ("env4[pt] equals compute_env4(pt) rebuilt from scratch").
func (p *Position) ComputeEnv4(pt Point) (env4, env4d uint8) {
	colorAt := func(i int) Color {
		if i < 0 || i >= len(p.color) {
			return Out
		}
		return p.color[i]
	}
	for slot, d := range p.Geom.Orth {
		env4 = setSlot(env4, slot, colorAt(int(pt)+int(d)).code())
	}
	for slot, d := range p.Geom.Diag {
		env4d = setSlot(env4d, slot, colorAt(int(pt)+int(d)).code())
	}
	return
}

// Env8 is the 16-bit neighborhood key used by the 3x3 pattern matcher: the
// low byte is the orthogonal env4, the high byte is the diagonal env4d.
func (p *Position) Env8(pt Point) uint16 {
	return uint16(p.env4[pt]) | uint16(p.env4d[pt])<<8
}

// rebuildEnv recomputes env4/env4d for every point from the color array.
// Only called at Reset: incremental updates during play keep the caches
// correct afterwards (see the invariant in spec §8).
func (p *Position) rebuildEnv() {
	colorAt := func(pt int) Color {
		if pt < 0 || pt >= len(p.color) {
			return Out
		}
		return p.color[pt]
	}
	for i := range p.color {
		var e4, e4d uint8
		for slot, d := range p.Geom.Orth {
			e4 = setSlot(e4, slot, colorAt(i+int(d)).code())
		}
		for slot, d := range p.Geom.Diag {
			e4d = setSlot(e4d, slot, colorAt(i+int(d)).code())
		}
		p.env4[i] = e4
		p.env4d[i] = e4d
	}
}

// setNeighborEnv updates every neighbor's cache to reflect that pt is now
// color c. Called after every stone placement/removal. Safe to call
// without bounds checks: pt is always a genuine board point (from Geom.Pt),
// and the geometry guarantees every one of its 8 neighbor offsets lands
// inside the array.
func (p *Position) setNeighborEnv(pt Point, c Color) {
	code := c.code()
	for i, d := range p.Geom.Orth {
		np := pt + d
		rev := i ^ 1
		p.env4[np] = setSlot(p.env4[np], rev, code)
	}
	for i, d := range p.Geom.Diag {
		np := pt + d
		rev := i ^ 1
		p.env4d[np] = setSlot(p.env4d[np], rev, code)
	}
}

func (p *Position) putStone(pt Point, c Color) {
	p.color[pt] = c
	p.setNeighborEnv(pt, c)
}

func (p *Position) removeStone(pt Point) {
	p.color[pt] = Empty
	p.setNeighborEnv(pt, Empty)
}

// swapColors flips every stone's identity and the parallel bits in the
// neighborhood caches, implementing the "to-play is always X" convention.
func (p *Position) swapColors() {
	for i, c := range p.color {
		p.color[i] = c.swapped()
	}
	for i, e := range p.env4 {
		p.env4[i] = swapTable[e]
	}
	for i, e := range p.env4d {
		p.env4d[i] = swapTable[e]
	}
}

// PlayMove places a stone for the side to move at pt, handling capture,
// suicide rejection and ko. On success the board is left swap-cased so
// the new side to move is X again.
func (p *Position) PlayMove(scratch *Scratch, pt Point) error {
	if p.color[pt] != Empty {
		return errors.Errorf("board: point %d is occupied", pt)
	}
	if pt == p.Ko {
		return errors.Errorf("board: point %d is forbidden by ko", pt)
	}

	u := undoState{
		valid:                true,
		point:                pt,
		capturedPoint:        NoKo,
		prevKo:               p.Ko,
		prevKoOld:            p.KoOld,
		prevLast:             p.Last,
		prevLast2:            p.Last2,
		prevLast3:            p.Last3,
		prevN:                p.N,
		prevCap:              p.Cap,
		prevCapX:             p.CapX,
		prevLastCapture:      p.LastCapture,
		prevLastCaptureCount: p.LastCaptureCount,
	}

	p.putStone(pt, ToPlay)

	captured := 0
	lastCapturedBlock := PASS
	for _, d := range p.Geom.Orth {
		np := pt + d
		if p.color[np] != Opponent {
			continue
		}
		scratch.blockStones.Reset()
		scratch.blockLibs.Reset()
		p.ComputeBlock(scratch.Mark1, np, scratch.blockStones, scratch.blockLibs, 1)
		if scratch.blockLibs.Len() != 0 {
			continue
		}
		for _, s := range scratch.blockStones.Points {
			p.removeStone(s)
		}
		captured += scratch.blockStones.Len()
		if scratch.blockStones.Len() == 1 {
			lastCapturedBlock = scratch.blockStones.Points[0]
		}
	}

	if captured > 0 {
		u.capturedCount = captured
		if captured == 1 {
			u.capturedPoint = lastCapturedBlock
			if IsEyeish(p, lastCapturedBlock) == ToPlay {
				p.Ko = lastCapturedBlock
			} else {
				p.Ko = NoKo
			}
		} else {
			p.Ko = NoKo
		}
	} else {
		scratch.blockStones.Reset()
		scratch.blockLibs.Reset()
		p.ComputeBlock(scratch.Mark1, pt, scratch.blockStones, scratch.blockLibs, 1)
		if scratch.blockLibs.Len() == 0 {
			// Suicide: undo the placement we speculatively made and bail
			// without touching any counters.
			p.removeStone(pt)
			return errors.Errorf("board: move at %d is suicide", pt)
		}
		p.Ko = NoKo
	}

	p.CapX += captured
	p.KoOld = u.prevKo
	p.Last3, p.Last2, p.Last = p.Last2, p.Last, pt
	p.N++
	p.swapColors()
	p.Cap, p.CapX = p.CapX, p.Cap

	p.LastCapture = u.capturedPoint
	p.LastCaptureCount = captured
	p.undo = u
	return nil
}

// PassMove passes: the board still swap-cases so to-play stays X, the ply
// counter advances, ko clears, and the move-history shifts to record PASS.
func (p *Position) PassMove() {
	u := undoState{
		valid:                true,
		pass:                 true,
		prevKo:               p.Ko,
		prevKoOld:            p.KoOld,
		prevLast:             p.Last,
		prevLast2:            p.Last2,
		prevLast3:            p.Last3,
		prevN:                p.N,
		prevCap:              p.Cap,
		prevCapX:             p.CapX,
		prevLastCapture:      p.LastCapture,
		prevLastCaptureCount: p.LastCaptureCount,
	}
	p.swapColors()
	p.Cap, p.CapX = p.CapX, p.Cap
	p.Ko = NoKo
	p.Last3, p.Last2, p.Last = p.Last2, p.Last, PASS
	p.N++
	p.LastCapture = NoKo
	p.LastCaptureCount = 0
	p.undo = u
}

// UndoMove reverses the most recent PlayMove or PassMove. It cannot
// reverse a move that captured more than one stone (see spec §9); it
// then returns an error and leaves the position unchanged. Its callers
// are the playout's self-atari rejection and Engine.Undo; ladder reading
// works on clones instead.
func (p *Position) UndoMove() error {
	u := p.undo
	if !u.valid {
		return errors.New("board: nothing to undo")
	}
	defer func() { p.undo = undoState{} }()

	if u.pass {
		p.swapColors()
		p.N = u.prevN
		p.Last, p.Last2, p.Last3 = u.prevLast, u.prevLast2, u.prevLast3
		p.Ko, p.KoOld = u.prevKo, u.prevKoOld
		p.Cap, p.CapX = u.prevCap, u.prevCapX
		p.LastCapture, p.LastCaptureCount = u.prevLastCapture, u.prevLastCaptureCount
		return nil
	}
	if u.capturedCount > 1 {
		return errors.New("board: cannot undo a move that captured more than one stone")
	}

	p.swapColors()
	if u.capturedCount == 1 {
		p.putStone(u.capturedPoint, Opponent)
	}
	p.removeStone(u.point)
	p.N = u.prevN
	p.Last, p.Last2, p.Last3 = u.prevLast, u.prevLast2, u.prevLast3
	p.Ko, p.KoOld = u.prevKo, u.prevKoOld
	p.Cap, p.CapX = u.prevCap, u.prevCapX
	p.LastCapture, p.LastCaptureCount = u.prevLastCapture, u.prevLastCaptureCount
	return nil
}
