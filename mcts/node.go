package mcts

import (
	"fmt"

	"github.com/corvid/weiqi/board"
)

// NodeID indexes into a Tree's node arena. noNode marks the absence of a
// node (an unset parent, a failed lookup).
type NodeID int32

const noNode NodeID = -1

// Node is one vertex of the search tree: the position reached by playing
// move from its parent, visit/win counts from the perspective of the side
// that played move, prior pseudo-counts seeded at expansion, and RAVE
// counts gathered from playouts anywhere in the subtree. See spec §3's
// TreeNode and §4.8.
type Node struct {
	parent   NodeID
	move     board.Point
	pos      *board.Position
	children []NodeID
	expanded bool

	v, w   int // visits, wins
	pv, pw int // prior visits, prior wins
	av, aw int // RAVE visits, RAVE wins
}

func (n *Node) String() string {
	return fmt.Sprintf("{move=%v v=%d w=%d pv=%d pw=%d av=%d aw=%d}", n.move, n.v, n.w, n.pv, n.pw, n.av, n.aw)
}

// Move is the point played to reach this node from its parent. The root's
// Move is board.PASS and carries no meaning.
func (n *Node) Move() board.Point { return n.move }

// Visits is the real (non-prior) visit count.
func (n *Node) Visits() int { return n.v }

// Wins is the real (non-prior) win count.
func (n *Node) Wins() int { return n.w }

// Children lists this node's child ids, empty until Expand runs.
func (n *Node) Children() []NodeID { return n.children }

// WinRate is w/v, guarding the unvisited case.
func (n *Node) WinRate() float32 {
	if n.v == 0 {
		return 0
	}
	return float32(n.w) / float32(n.v)
}

// Position is the board reached at this node. Callers must not mutate it.
func (n *Node) Position() *board.Position { return n.pos }

// urgency implements spec §4.8's RAVE-blended expectation. raveEquiv is
// the crossover scale (RAVE_EQUIV, 3500 by default) at which AMAF and
// real-visit statistics carry equal weight.
func (n *Node) urgency(raveEquiv float32) float32 {
	v := float32(n.v + n.pv)
	ex := float32(n.w+n.pw) / v
	if n.av == 0 {
		return ex
	}
	rex := float32(n.aw) / float32(n.av)
	av := float32(n.av)
	beta := av / (av + v + v*av/raveEquiv)
	return beta*rex + (1-beta)*ex
}
