package mcts

import "gorgonia.org/tensor"

// OwnerMap accumulates spec §4.7 step 5's owner_out across every playout a
// search runs: a per-point running sum of ownership sign (+1 to-play,
// -1 opponent, 0 neither), divided by sample count on read. Kept as a
// tensor.Dense and updated with its Add method, the same construct the
// teacher uses for batched training tensors in agogo.go, applied here to
// one flat board-sized vector instead of a batch of feature planes.
type OwnerMap struct {
	sum  *tensor.Dense
	n    int
	size int
}

// NewOwnerMap allocates an owner map for a board of size points.
func NewOwnerMap(size int) *OwnerMap {
	return &OwnerMap{
		sum:  tensor.New(tensor.WithShape(size), tensor.WithBacking(make([]float64, size))),
		size: size,
	}
}

// Add folds one playout's per-point ownership signs into the running sum.
func (o *OwnerMap) Add(sample []float32) error {
	data := make([]float64, o.size)
	for i, v := range sample {
		data[i] = float64(v)
	}
	delta := tensor.New(tensor.WithShape(o.size), tensor.WithBacking(data))
	if _, err := o.sum.Add(delta, tensor.UseUnsafe()); err != nil {
		return err
	}
	o.n++
	return nil
}

// Territory returns the mean ownership sign per point across every sample
// folded in so far: positive means the root's to-play side is estimated
// to own the point.
func (o *OwnerMap) Territory() []float32 {
	out := make([]float32, o.size)
	if o.n == 0 {
		return out
	}
	raw := o.sum.Data().([]float64)
	for i, v := range raw {
		out[i] = float32(v / float64(o.n))
	}
	return out
}
