package board

// FixAtari examines the block at pt and reports whether it is currently in
// atari, together with a list of candidate moves (paired with the size of
// the block each move concerns) that either capture an enemy block in
// atari, rescue our own, or threaten a ladder capture on a 2-liberty
// block. See spec §4.3 for the exact branch semantics; singleptOK=false
// suppresses proposing a self-escape for a lone stone (it never
// suppresses counter-capture proposals).
func FixAtari(p *Position, scratch *Scratch, pt Point, singleptOK, twolibTest, twolibEdgeonly bool) (atari bool, moves []Point, sizes []int) {
	scratch.blockStones.Reset()
	scratch.blockLibs.Reset()
	p.ComputeBlock(scratch.Mark1, pt, scratch.blockStones, scratch.blockLibs, 3)
	blockSize := scratch.blockStones.Len()
	nlibs := scratch.blockLibs.Len()
	stones := append([]Point(nil), scratch.blockStones.Points...)
	libs := append([]Point(nil), scratch.blockLibs.Points...)

	switch {
	case nlibs >= 2:
		if nlibs != 2 || !twolibTest || blockSize == 1 {
			return false, nil, nil
		}
		if twolibEdgeonly && !p.Geom.OnEdge(libs[0]) && !p.Geom.OnEdge(libs[1]) {
			return false, nil, nil
		}
		if lib, ok := ReadLadderAttack(p, scratch, pt, libs); ok {
			moves = []Point{lib}
			sizes = []int{blockSize}
		}
		return false, moves, sizes

	case nlibs == 1:
		lib := libs[0]
		if p.color[pt] == Opponent {
			return true, []Point{lib}, []int{blockSize}
		}

		// Our own block, in atari. (i) counter-capture any adjacent
		// opposing block that is itself in atari.
		for _, s := range stones {
			for _, d := range p.Geom.Orth {
				np := s + d
				if p.color[np] != Opponent {
					continue
				}
				scratch.blockStones.Reset()
				scratch.blockLibs.Reset()
				p.ComputeBlock(scratch.Mark2, np, scratch.blockStones, scratch.blockLibs, 1)
				if scratch.blockLibs.Len() != 1 {
					continue
				}
				counterLib := scratch.blockLibs.Points[0]
				alreadyListed := false
				for _, m := range moves {
					if m == counterLib {
						alreadyListed = true
					}
				}
				if !alreadyListed {
					moves = append(moves, counterLib)
					sizes = append(sizes, scratch.blockStones.Len())
				}
			}
		}

		// (ii) play the liberty ourselves, provided it actually escapes.
		if blockSize > 1 || singleptOK {
			if escapes(p, scratch, pt, lib, twolibEdgeonly) {
				moves = append(moves, lib)
				sizes = append(sizes, blockSize)
			}
		}
		return true, moves, sizes

	default:
		return false, nil, nil
	}
}

// escapes reports whether playing lib (our only liberty) actually saves
// the block: it must gain at least two liberties, and if it gains exactly
// two, those two liberties must not themselves be a ladder loss.
func escapes(p *Position, scratch *Scratch, pt, lib Point, twolibEdgeonly bool) bool {
	clone := p.Clone()
	if err := clone.PlayMove(scratch, lib); err != nil {
		return false
	}
	scratch.blockStones.Reset()
	scratch.blockLibs.Reset()
	// After the move, colors are swap-cased: our stone (and the rest of
	// the rescued block) is colored Opponent from the new to-move's seat,
	// so look it up via pt, which still names the same block.
	clone.ComputeBlock(scratch.Mark1, pt, scratch.blockStones, scratch.blockLibs, 3)
	newLibs := scratch.blockLibs.Len()
	if newLibs < 2 {
		return false
	}
	if newLibs > 2 {
		return true
	}
	libs := append([]Point(nil), scratch.blockLibs.Points...)
	// Exactly two liberties: the escape only holds if the opponent cannot
	// immediately ladder-capture it back.
	if _, caught := ReadLadderAttack(clone, scratch, pt, libs); caught {
		return false
	}
	return true
}

// ReadLadderAttack tries each of the block's two liberties as a capturing
// continuation: play it, then ask whether the block (now one liberty
// short, with a one-move horizon) is hopelessly in atari. The first
// liberty that works is returned.
func ReadLadderAttack(p *Position, scratch *Scratch, pt Point, libs []Point) (Point, bool) {
	for _, lib := range libs {
		clone := p.Clone()
		if err := clone.PlayMove(scratch, lib); err != nil {
			continue
		}
		atari, moves, _ := FixAtari(clone, scratch, pt, false, false, false)
		if atari && len(moves) == 0 {
			return lib, true
		}
	}
	return PASS, false
}
