// Package playout implements the biased random-game simulator used to
// estimate the value of a leaf position: mcplayout's capture/pattern/random
// move cascade, self-atari rejection, and terminal scoring.
package playout

import (
	"io"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
	"github.com/corvid/weiqi/rng"
)

const (
	// MaxGameLen bounds a playout so a pathological position (or a bug)
	// can't loop forever instead of reaching two passes.
	MaxGameLen = 500

	probHeuristicCapture = 0.9
	probHeuristicPat3    = 0.95
	probSSAReject        = 0.9
	probRSAReject        = 0.5
)

// Policy bundles the read-only resources a playout needs: the compiled
// 3x3 pattern set and the random stream every decision is drawn from.
// Both are safe to share across playouts run on the same goroutine, which
// is the only concurrency this engine supports (see spec §5).
type Policy struct {
	Pat3 *pattern.Pat3Set
	RNG  *rng.Source

	// Trace, if non-nil, receives one line per move played during the
	// playout (its coordinate); passes are not written.
	Trace io.Writer
}

// Result is everything a completed playout reports back to the MCTS
// update step: the terminal score (from the perspective of whoever was
// to play when the playout started), the AMAF map of which points the
// real Black/White side first played, and per-point ownership signs to
// accumulate into the search-wide ownership map.
type Result struct {
	Score float32
	AMAF  []int8
	Owner []float32
}

// Run simulates one playout from start (which is left unmodified; Run
// works on a clone) until two consecutive passes or MaxGameLen plies.
func (pol *Policy) Run(start *board.Position, scratch *board.Scratch) Result {
	p := start.Clone()
	amaf := make([]int8, p.Geom.Size)
	passes := 0

	for passes < 2 && p.N-start.N < MaxGameLen {
		blackToMove := p.N%2 == 0
		pt, ok := pol.chooseMove(p, scratch)
		if !ok {
			p.PassMove()
			passes++
			continue
		}
		passes = 0
		if amaf[pt] == 0 {
			if blackToMove {
				amaf[pt] = 1
			} else {
				amaf[pt] = -1
			}
		}
		if pol.Trace != nil {
			io.WriteString(pol.Trace, board.StrCoord(p.Geom, pt)+"\n")
		}
	}

	plies := p.N - start.N
	score := Score(p)
	if plies%2 != 0 {
		score = -score
	}
	owner := ownership(p, plies%2 != 0)
	return Result{Score: score, AMAF: amaf, Owner: owner}
}

// chooseMove runs the capture -> pat3 -> random cascade described in
// spec §4.7 step 3, returning the move it actually played (chooseFrom
// already plays and, on self-atari rejection, undoes candidates).
func (pol *Policy) chooseMove(p *board.Position, scratch *board.Scratch) (board.Point, bool) {
	set := lastMovesNeighbors(p, pol.RNG)
	if len(set) > 0 {
		if pol.RNG.Chance(probHeuristicCapture) {
			// genCaptureMoves already orders candidates biggest-block-first;
			// keep that order instead of reshuffling it away.
			caps := genCaptureMoves(p, scratch, set, false)
			if pt, ok := chooseFrom(p, scratch, caps, probSSAReject, pol.RNG); ok {
				return pt, true
			}
		}
		if pol.RNG.Chance(probHeuristicPat3) {
			pats := genPat3Moves(p, set, pol.Pat3)
			rng.Shuffle(pol.RNG, pats)
			if pt, ok := chooseFrom(p, scratch, pats, probSSAReject, pol.RNG); ok {
				return pt, true
			}
		}
	}
	start := board.Point(pol.RNG.Intn(p.Geom.Size))
	randoms := genRandomMoves(p, start)
	if pt, ok := chooseFrom(p, scratch, randoms, probRSAReject, pol.RNG); ok {
		return pt, true
	}
	return board.PASS, false
}

// ownership classifies every point of the terminal position p as
// belonging to the playout's original to-play side (+1), its opponent
// (-1), or neither (0), flipping the sign if an odd number of plies were
// played since start (which swaps which real side p's "ToPlay" color
// names).
func ownership(p *board.Position, flip bool) []float32 {
	out := make([]float32, p.Geom.Size)
	for pt := board.Point(0); int(pt) < p.Geom.Size; pt++ {
		var sign float32
		switch p.Color(pt) {
		case board.ToPlay:
			sign = 1
		case board.Opponent:
			sign = -1
		case board.Empty:
			switch board.IsEyeish(p, pt) {
			case board.ToPlay:
				sign = 1
			case board.Opponent:
				sign = -1
			}
		}
		if flip {
			sign = -sign
		}
		out[pt] = sign
	}
	return out
}
