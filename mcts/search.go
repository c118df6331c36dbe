package mcts

import "github.com/corvid/weiqi/board"

// Result is what one Search call reports: the move to play (or PASS/
// Resign), how many simulations actually ran before an early stop, and
// the accumulated ownership map (OwnerMap.Territory, signed for the
// root's side to move).
type Result struct {
	Move       board.Point
	Resign     bool
	Iterations int
	Owner      []float32
}

// Search runs up to n playouts from the root, expanding and updating the
// tree per spec §4.8's tree_search, then selects a move. Grounded on the
// teacher's Search/doSearch/pipeline trio in mcts/search.go, stripped of
// its goroutine pool, neural-network inference and context cancellation:
// spec §5 makes this single-threaded and synchronous, and the NN is
// replaced outright by the heuristic prior table in priors.go.
func (t *Tree) Search(n int) Result {
	root := t.node(t.root)
	if !root.expanded {
		t.expand(t.root)
	}

	for i := 0; i < n; i++ {
		path := t.descend()
		leaf := t.node(path[len(path)-1])

		result := t.res.Policy.Run(leaf.pos, t.res.Scratch)
		t.update(path, result.Score, result.AMAF)
		t.accumulateOwnership(result.Owner, len(path)-1)

		if t.res.Logger != nil && t.ReportPeriod > 0 && (i+1)%t.ReportPeriod == 0 {
			t.res.Logger.Printf("mcts: iteration %d/%d, %d nodes", i+1, n, len(t.nodes))
		}

		if i > 0 {
			if best, ok := t.bestRootChild(); ok {
				wr := t.node(best).WinRate()
				frac := float32(i) / float32(n)
				if (frac > 0.05 && wr > 0.95) || (frac > 0.2 && wr > 0.8) {
					return t.selectMove(i + 1)
				}
			}
		}
	}

	return t.selectMove(n)
}

// descend implements tree_descend: shuffle-then-max-urgency from the
// root to a leaf, expanding the leaf in place and taking one more step
// once its visit count reaches ExpandVisits, stopping on two consecutive
// passes.
func (t *Tree) descend() []NodeID {
	path := []NodeID{t.root}
	current := t.root
	passes := 0

	for {
		n := t.node(current)
		if len(n.children) == 0 {
			break
		}
		current = t.pickChild(n.children)
		path = append(path, current)

		if t.node(current).move == board.PASS {
			passes++
			if passes >= 2 {
				break
			}
		} else {
			passes = 0
		}
	}

	leaf := t.node(current)
	if !leaf.expanded && leaf.v >= t.ExpandVisits {
		t.expand(current)
		leaf = t.node(current)
		if len(leaf.children) > 0 {
			path = append(path, t.pickChild(leaf.children))
		}
	}
	return path
}

// update implements tree_update: walk the path leaf to root, crediting
// visits/wins at every node and AMAF credit to any child whose move the
// same side played first during the playout, negating score at each step
// up since every level alternates whose perspective w/v are kept in.
func (t *Tree) update(path []NodeID, leafScore float32, amaf []int8) {
	score := leafScore
	for i := len(path) - 1; i >= 0; i-- {
		n := t.node(path[i])
		n.v++
		if score < 0 {
			n.w++
		}

		var wantSign int8 = -1
		if n.pos.N%2 == 0 {
			wantSign = 1
		}
		for _, childID := range n.children {
			c := t.node(childID)
			if c.move < 0 {
				continue
			}
			if amaf[c.move] != wantSign {
				continue
			}
			if score > 0 {
				c.aw++
			}
			c.av++
		}

		score = -score
	}
}

// accumulateOwnership folds a playout's ownership sample into the tree's
// running map, flipping its sign when the leaf it came from sits at an
// odd depth (so a different real side than the root's to-play was "X" in
// the playout's own frame).
func (t *Tree) accumulateOwnership(sample []float32, leafDepth int) {
	if leafDepth%2 != 0 {
		flipped := make([]float32, len(sample))
		for i, v := range sample {
			flipped[i] = -v
		}
		sample = flipped
	}
	_ = t.owner.Add(sample)
}

// bestRootChild is the most-visited child of the root, per tree_search
// step 4's selection rule (distinct from descend's urgency-based pick).
func (t *Tree) bestRootChild() (NodeID, bool) {
	root := t.node(t.root)
	if len(root.children) == 0 {
		return noNode, false
	}
	best := root.children[0]
	for _, c := range root.children[1:] {
		if t.node(c).v > t.node(best).v {
			best = c
		}
	}
	return best, true
}

// selectMove implements tree_search step 4: most-visited child wins,
// resigning if its win rate is too low, passing if the game already
// ended in two passes, else returning its move.
func (t *Tree) selectMove(iterations int) Result {
	owner := t.owner.Territory()
	root := t.node(t.root)

	best, ok := t.bestRootChild()
	if !ok {
		return Result{Move: board.PASS, Iterations: iterations, Owner: owner}
	}
	bestNode := t.node(best)
	if bestNode.v > 0 && float32(bestNode.w)/float32(bestNode.v) < 0.2 {
		return Result{Move: board.Resign, Resign: true, Iterations: iterations, Owner: owner}
	}
	if root.pos.Last == board.PASS && root.pos.Last2 == board.PASS {
		return Result{Move: board.PASS, Iterations: iterations, Owner: owner}
	}
	return Result{Move: bestNode.move, Iterations: iterations, Owner: owner}
}
