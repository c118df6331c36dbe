package engine

import (
	"gonum.org/v1/gonum/stat"

	"github.com/corvid/weiqi/board"
)

// BenchResult is mcbenchmark's report: the mean and standard deviation of
// n playout-policy games from the empty board, per spec §8's round-trip
// law ("mcbenchmark(2000) ... returns a finite mean score within one
// standard deviation of ~0").
type BenchResult struct {
	N      int
	Mean   float64
	StdDev float64
}

// Benchmark runs n self-play games using only the playout policy (no
// tree search), grounded on the teacher's Arena.Play self-play loop but
// replacing its neural-network agents with mcplayout, and summarizes the
// resulting scores with gonum/stat the way the teacher's batched tensor
// statistics summarize training examples.
func (e *Engine) Benchmark(n int) BenchResult {
	empty := board.NewPosition(e.geom, e.cfg.Komi)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		result := e.policy.Run(empty, e.scratch)
		scores[i] = float64(result.Score)
	}
	mean, stddev := stat.MeanStdDev(scores, nil)
	return BenchResult{N: n, Mean: mean, StdDev: stddev}
}
