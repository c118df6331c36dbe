package mcts

import "golang.org/x/exp/slices"

// pickChild implements spec §4.8's "shuffle children then pick the child
// with maximum urgency": shuffling first means ties between equal-urgency
// children (common early in a search, when every fresh node shares the
// even prior) resolve randomly rather than always favoring move-generation
// order. Sorting with slices.SortFunc after the shuffle replaces a
// hand-rolled sort.Interface the way the teacher's fancySort/byScore used
// to.
func (t *Tree) pickChild(children []NodeID) NodeID {
	cs := append([]NodeID(nil), children...)
	t.res.RNG.ShuffleN(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
	slices.SortFunc(cs, func(a, b NodeID) bool {
		return t.node(a).urgency(t.RaveEquiv) > t.node(b).urgency(t.RaveEquiv)
	})
	return cs[0]
}
