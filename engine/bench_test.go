package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchmarkReportsFiniteMeanNearZero(t *testing.T) {
	e := newTestEngine(t)
	result := e.Benchmark(20)

	assert.Equal(t, 20, result.N)
	assert.False(t, isNaNOrInf(result.Mean))
	assert.False(t, isNaNOrInf(result.StdDev))
}

func isNaNOrInf(f float64) bool {
	return f != f || f > 1e300 || f < -1e300
}
