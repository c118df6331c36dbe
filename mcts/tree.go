// Package mcts implements the RAVE/UCT-style search tree described in
// spec §4.8: node expansion with domain priors, shuffled urgency descent,
// AMAF backpropagation, and early-stop move selection. Search is
// single-threaded and synchronous per spec §5; one Tree's arena lives for
// exactly one call to Search, discarded afterwards, matching the "arena
// whose lifetime equals tree_search" design note in spec §9.
package mcts

import (
	"log"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
	"github.com/corvid/weiqi/playout"
	"github.com/corvid/weiqi/rng"
)

// Tuning constants from spec §4.8, kept as package-level defaults rather
// than hardwired literals so a caller can override them via Config
// (spec §9's open question on runtime-vs-compile-time constants is
// resolved in favor of runtime config, matching the teacher's
// Config/DefaultConfig pattern).
const (
	DefaultRaveEquiv    = 3500
	DefaultExpandVisits = 8
	DefaultReportPeriod = 500
)

// Config collects the tunables a Tree needs beyond the position it starts
// from, following mcts.Config/DefaultConfig in the teacher.
type Config struct {
	RaveEquiv    float32
	ExpandVisits int
	ReportPeriod int
}

// DefaultConfig returns the spec-mandated constants.
func DefaultConfig() Config {
	return Config{
		RaveEquiv:    DefaultRaveEquiv,
		ExpandVisits: DefaultExpandVisits,
		ReportPeriod: DefaultReportPeriod,
	}
}

// IsValid reports whether c is usable.
func (c Config) IsValid() bool {
	return c.RaveEquiv > 0 && c.ExpandVisits > 0 && c.ReportPeriod > 0
}

// Resources bundles the engine-owned state a Tree needs to expand nodes
// and run playouts: the compiled pattern sets (read-only), scratch
// buffers and the RNG stream (both mutated during search), the playout
// policy and the log target. The engine builds a Resources value from its
// own fields for every Tree it creates.
type Resources struct {
	Pat3    *pattern.Pat3Set
	Large   *pattern.LargeDict
	Scratch *board.Scratch
	Policy  *playout.Policy
	RNG     *rng.Source
	Logger  *log.Logger
}

// Tree is one search: a node arena rooted at a starting position.
type Tree struct {
	Config
	res   Resources
	nodes []Node
	root  NodeID
	owner *OwnerMap
}

// NewTree allocates a fresh tree rooted at start (which is cloned; Tree
// never mutates the caller's position).
func NewTree(start *board.Position, cfg Config, res Resources) *Tree {
	t := &Tree{
		Config: cfg,
		res:    res,
		nodes:  make([]Node, 0, 4096),
		owner:  NewOwnerMap(start.Geom.Size),
	}
	t.root = t.alloc(noNode, board.PASS, start.Clone(), 0, 0)
	return t
}

// alloc appends a new node to the arena and returns its id. Nodes are
// never freed mid-search: the whole arena is discarded with the Tree once
// Search returns (spec §9).
func (t *Tree) alloc(parent NodeID, move board.Point, pos *board.Position, pv, pw int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		parent: parent,
		move:   move,
		pos:    pos,
		pv:     pv,
		pw:     pw,
	})
	return id
}

// node is the read/write accessor into the arena. No locking: a Tree is
// only ever touched by the goroutine running Search.
func (t *Tree) node(id NodeID) *Node { return &t.nodes[id] }

// Root returns the id of the tree's root node.
func (t *Tree) Root() NodeID { return t.root }

// Node exposes a node for read-only inspection (the debug tree dumper in
// engine/dump.go walks the tree this way).
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// NumNodes reports the arena's current size, for diagnostics.
func (t *Tree) NumNodes() int { return len(t.nodes) }
