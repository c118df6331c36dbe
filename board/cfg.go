package board

// ComputeCFGDistances floods the common-fate graph from src: traversal
// within a same-color block costs zero (the whole block is one node),
// traversal onto a different color or empty costs one. It returns a
// board-sized map of distances, with unreached points left at -1.
func ComputeCFGDistances(p *Position, src Point) []int {
	dist := make([]int, len(p.color))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0

	// A point is (re)queued whenever a shorter distance to it is found, so
	// the flood keeps relaxing until no distance improves; a neighboring
	// stone of the same color is queued at the same distance.
	queue := []Point{src}
	for len(queue) > 0 {
		pt := queue[0]
		queue = queue[1:]
		d := dist[pt]
		c := p.color[pt]

		for _, delta := range p.Geom.Orth {
			np := pt + delta
			if p.color[np] == Out {
				continue
			}
			step := 1
			if c != Empty && p.color[np] == c {
				step = 0
			}
			nd := d + step
			if dist[np] == -1 || nd < dist[np] {
				dist[np] = nd
				queue = append(queue, np)
			}
		}
	}
	return dist
}
