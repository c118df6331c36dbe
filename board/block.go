package board

// ComputeBlock runs a breadth-first search over same-color stones starting
// at start, using mark for visited-point bookkeeping. stones always
// receives the block's complete membership; libs receives distinct empty
// neighbors up to nlibsCap entries — callers pass 1, 2 or 3 depending on
// how much liberty detail they actually need (an atari check only needs
// to know "zero liberties?", never the true count). Capping libs rather
// than the block flood itself keeps the result always safe to use for a
// capture, since a block that turns out capturable has, by definition,
// never hit the liberty cap before the flood finishes.
func (p *Position) ComputeBlock(mark *Mark, start Point, stones, libs *Slist, nlibsCap int) {
	color := p.color[start]
	mark.Reset()
	mark.Mark(start)

	frontier := []Point{start}
	for len(frontier) > 0 {
		pt := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		stones.Push(pt)

		for _, d := range p.Geom.Orth {
			np := pt + d
			if mark.IsMarked(np) {
				continue
			}
			switch p.color[np] {
			case color:
				mark.Mark(np)
				frontier = append(frontier, np)
			case Empty:
				mark.Mark(np)
				if libs.Len() < nlibsCap {
					libs.Push(np)
				}
			}
		}
	}
}

// CaptureBlock removes every stone in stones from the board.
func (p *Position) CaptureBlock(stones *Slist) {
	for _, s := range stones.Points {
		p.removeStone(s)
	}
}
