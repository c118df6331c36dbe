package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertInvariantsPassesOnFreshEngine(t *testing.T) {
	e := newTestEngine(t)
	assert.NoError(t, e.AssertInvariants())
}

func TestAssertInvariantsPassesAfterPlay(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Play(e.Geometry().Pt(2, 2)))
	require.NoError(t, e.Play(e.Geometry().Pt(2, 3)))
	assert.NoError(t, e.AssertInvariants())
}

func TestAssertCaptureTotalCatchesDrift(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Play(e.Geometry().Pt(2, 2)))
	e.totalCaptured = 99
	assert.Error(t, e.assertCaptureTotal())
}
