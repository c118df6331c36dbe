package mcts

import (
	"github.com/chewxy/math32"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
)

// Prior deltas from spec §4.8's table. Every legal child always receives
// the even prior; the rest stack on top of it.
const (
	priorEvenPV = 10
	priorEvenPW = 5

	priorCaptureOnePV  = 15
	priorCaptureOnePW  = 15
	priorCaptureManyPV = 30
	priorCaptureManyPW = 30

	priorPat3PV = 10
	priorPat3PW = 10

	priorCFG1PV = 24
	priorCFG1PW = 24
	priorCFG2PV = 22
	priorCFG2PW = 22
	priorCFG3PV = 8
	priorCFG3PW = 8

	priorEmptyEdgePV = 10 // lines 1-2: pv only, no matching pw (a malus on win rate)
	priorEmptyLine3PV = 10
	priorEmptyLine3PW = 10

	priorSelfAtariPV = 10 // pw deliberately 0: a risky-shape malus, not a bonus

	// emptyAreaRadius is the Chebyshev radius spec §4.8 calls "radius 3"
	// for the empty-area line heuristic.
	emptyAreaRadius = 3
)

// expand fills n's children with one per legal move, each seeded with its
// prior pseudo-counts, or a single PASS child if no legal move exists.
// Grounded on the teacher's Node expansion in mcts/search.go
// (expandAndSimulate), replacing its neural-network policy lookup with
// the table of hand-tuned heuristics spec §4.8 specifies.
func (t *Tree) expand(id NodeID) {
	n := t.node(id)
	if n.expanded {
		return
	}
	n.expanded = true
	pos := n.pos

	var cfg []int
	if pos.Last != board.PASS {
		cfg = board.ComputeCFGDistances(pos, pos.Last)
	}

	for pt := board.Point(0); int(pt) < pos.Geom.Size; pt++ {
		if pos.Color(pt) != board.Empty {
			continue
		}
		if board.IsEye(pos, pt) == board.ToPlay {
			continue
		}
		child, pv, pw, ok := t.priorMove(pos, pt, cfg)
		if !ok {
			continue
		}
		n.children = append(n.children, t.alloc(id, pt, child, pv, pw))
	}

	if len(n.children) == 0 {
		passPos := pos.Clone()
		passPos.PassMove()
		n.children = append(n.children, t.alloc(id, board.PASS, passPos, priorEvenPV, priorEvenPW))
	}
}

// priorMove plays pt on a clone of pos (so the child's Position is ready
// to hand off, and so capture size is directly readable off
// Position.LastCaptureCount) and accumulates every applicable prior from
// spec §4.8. ok is false when pt turns out to be illegal (suicide or ko).
func (t *Tree) priorMove(pos *board.Position, pt board.Point, cfg []int) (child *board.Position, pv, pw int, ok bool) {
	clone := pos.Clone()
	if err := clone.PlayMove(t.res.Scratch, pt); err != nil {
		return nil, 0, 0, false
	}

	pv, pw = priorEvenPV, priorEvenPW

	switch clone.LastCaptureCount {
	case 0:
	case 1:
		pv += priorCaptureOnePV
		pw += priorCaptureOnePW
	default:
		pv += priorCaptureManyPV
		pw += priorCaptureManyPW
	}

	if t.res.Pat3 != nil && t.res.Pat3.MatchPoint(pos, pt) {
		pv += priorPat3PV
		pw += priorPat3PW
	}

	if cfg != nil {
		switch cfg[pt] {
		case 1:
			pv += priorCFG1PV
			pw += priorCFG1PW
		case 2:
			pv += priorCFG2PV
			pw += priorCFG2PW
		case 3:
			pv += priorCFG3PV
			pw += priorCFG3PW
		}
	}

	if emptyish, line := emptyAreaLine(pos, pt); emptyish {
		if line <= 2 {
			pv += priorEmptyEdgePV
		} else if line == 3 {
			pv += priorEmptyLine3PV
			pw += priorEmptyLine3PW
		}
	}

	if atari, saves, _ := board.FixAtari(clone, t.res.Scratch, pt, true, false, false); atari && len(saves) > 0 {
		pv += priorSelfAtariPV
	}

	if t.res.Large != nil {
		if p, found := pattern.LargePatternProbability(pos, t.res.Large, pt); found && p > 0 {
			bonus := int(100 * math32.Sqrt(float32(p)))
			pv += bonus
			pw += bonus
		}
	}

	return clone, pv, pw, true
}

// emptyAreaLine reports whether pt's radius-3 neighborhood is entirely
// empty, and which board "line" (1 = edge, counting inward) it sits on.
// The spec table names this heuristic but leaves the exact line/radius
// geometry implicit; this is the natural reading consistent with the
// classic Go notion of board lines (see DESIGN.md for the open-question
// resolution).
func emptyAreaLine(pos *board.Position, pt board.Point) (emptyish bool, line int) {
	row, col := pos.Geom.RowCol(pt)
	n := pos.Geom.N

	line = row + 1
	if d := n - row; d < line {
		line = d
	}
	if col+1 < line {
		line = col + 1
	}
	if d := n - col; d < line {
		line = d
	}

	for dy := -emptyAreaRadius; dy <= emptyAreaRadius; dy++ {
		for dx := -emptyAreaRadius; dx <= emptyAreaRadius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nr, nc := row+dy, col+dx
			if !pos.Geom.InBoard(nr, nc) {
				continue
			}
			if pos.Color(pos.Geom.Pt(nr, nc)) != board.Empty {
				return false, line
			}
		}
	}
	return true, line
}
