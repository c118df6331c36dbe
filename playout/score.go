package playout

import (
	"github.com/chewxy/math32"

	"github.com/corvid/weiqi/board"
)

// Score implements the Tromp-Taylor-ish area count spec §4.7 step 5 calls
// for: every stone counts for its own color, every empty point whose
// orthogonal neighborhood is uniformly one color counts as that color's
// territory, and komi always goes to White: it is subtracted when Black
// is to play (even p.N) and added when White is. The result is signed
// from ToPlay's perspective: positive means ToPlay is ahead.
func Score(p *board.Position) float32 {
	var toPlayArea, opponentArea float32
	for pt := board.Point(0); int(pt) < p.Geom.Size; pt++ {
		c := p.Color(pt)
		switch c {
		case board.ToPlay:
			toPlayArea++
		case board.Opponent:
			opponentArea++
		case board.Empty:
			switch board.IsEyeish(p, pt) {
			case board.ToPlay:
				toPlayArea++
			case board.Opponent:
				opponentArea++
			}
		}
	}
	margin := toPlayArea - opponentArea
	// p.N counts plies since the last clear; even means the real side to
	// move is Black, who pays komi rather than receives it.
	if p.N%2 == 0 {
		margin -= float32(p.Komi)
	} else {
		margin += float32(p.Komi)
	}
	return margin
}

// Resigns reports whether margin represents a loss bad enough that the
// side it is measured for should resign rather than keep playing, mirroring the
// tree_search selection rule's `best.w/best.v < 0.2` resignation check
// applied directly to a playout score instead of a node's win rate.
func Resigns(margin float32, boardArea int) bool {
	return margin < -math32.Abs(0.6*float32(boardArea))
}
