package playout

import (
	"golang.org/x/exp/slices"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
	"github.com/corvid/weiqi/rng"
)

// lastMovesNeighbors builds the shuffled, deduplicated heuristic set
// gen_playout_moves_capture and gen_playout_moves_pat3 both scan: every
// orthogonal and diagonal neighbor of the last two played points,
// regardless of their current occupant (capture generation needs the
// occupied ones, pattern generation needs the empty ones).
func lastMovesNeighbors(p *board.Position, src *rng.Source) []board.Point {
	var out []board.Point
	seen := make(map[board.Point]bool)
	add := func(pt board.Point) {
		if pt < 0 {
			return // PASS / Resign are not board points
		}
		for _, d := range p.Geom.Orth {
			n := pt + d
			if p.Color(n) != board.Out && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
		for _, d := range p.Geom.Diag {
			n := pt + d
			if p.Color(n) != board.Out && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	add(p.Last)
	add(p.Last2)
	rng.Shuffle(src, out)
	return out
}

// genCaptureMoves runs fix_atari over every occupied point of set,
// proposing the capture/escape moves it finds, deduplicated and sorted by
// the size of the block each move concerns (captures of bigger groups
// tried first, a bias spec §4.7 leaves unspecified but doesn't forbid).
func genCaptureMoves(p *board.Position, scratch *board.Scratch, set []board.Point, expensiveOK bool) []board.Point {
	type candidate struct {
		pt   board.Point
		size int
	}
	var cands []candidate
	seen := make(map[board.Point]bool)
	for _, pt := range set {
		c := p.Color(pt)
		if c == board.Empty || c == board.Out {
			continue
		}
		_, moves, sizes := board.FixAtari(p, scratch, pt, false, true, !expensiveOK)
		for i, m := range moves {
			if !seen[m] {
				seen[m] = true
				cands = append(cands, candidate{pt: m, size: sizes[i]})
			}
		}
	}
	slices.SortFunc(cands, func(a, b candidate) bool { return a.size > b.size })
	out := make([]board.Point, len(cands))
	for i, c := range cands {
		out[i] = c.pt
	}
	return out
}

// genPat3Moves emits every empty point of set whose env8 matches the
// compiled 3x3 pattern set.
func genPat3Moves(p *board.Position, set []board.Point, pat3 *pattern.Pat3Set) []board.Point {
	var out []board.Point
	for _, pt := range set {
		if p.Color(pt) != board.Empty {
			continue
		}
		if pat3.MatchPoint(p, pt) {
			out = append(out, pt)
		}
	}
	return out
}

// genRandomMoves scans every board point starting at start and wrapping,
// emitting empty points that would not fill one of ToPlay's own eyes.
func genRandomMoves(p *board.Position, start board.Point) []board.Point {
	size := p.Geom.Size
	out := make([]board.Point, 0, size)
	for i := 0; i < size; i++ {
		pt := board.Point((int(start) + i) % size)
		if p.Color(pt) != board.Empty {
			continue
		}
		if board.IsEye(p, pt) == board.ToPlay {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// chooseFrom tries each candidate in order, playing the first that is
// legal. With probability rejectProb it then asks fix_atari (singlept_ok
// true) whether the just-played stone is in self-atari and, if so, undoes
// the move and keeps scanning. A move that captured more than one stone
// cannot be undone, so it is kept even when it is a self-atari.
func chooseFrom(p *board.Position, scratch *board.Scratch, candidates []board.Point, rejectProb float32, src *rng.Source) (board.Point, bool) {
	for _, pt := range candidates {
		if p.Color(pt) != board.Empty || pt == p.Ko {
			continue
		}
		if err := p.PlayMove(scratch, pt); err != nil {
			continue
		}
		if src.Chance(rejectProb) {
			if atari, _, _ := board.FixAtari(p, scratch, pt, true, false, false); atari {
				if err := p.UndoMove(); err != nil {
					return pt, true
				}
				continue
			}
		}
		return pt, true
	}
	return board.PASS, false
}
