package board

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringShowsPlacedStones(t *testing.T) {
	g := NewGeometry(5)
	p := NewPosition(g, DefaultKomi)
	s := NewScratch(g)
	require.NoError(t, p.PlayMove(s, g.Pt(2, 2)))

	out := p.String()
	// The stone just played belongs to the side that is no longer to move,
	// so String draws it as O.
	assert.Contains(t, out, "O")
	assert.Contains(t, out, "A")
}

func TestRenderPNGProducesDecodableImage(t *testing.T) {
	g := NewGeometry(5)
	p := NewPosition(g, DefaultKomi)
	s := NewScratch(g)
	require.NoError(t, p.PlayMove(s, g.Pt(2, 2)))

	var buf bytes.Buffer
	require.NoError(t, p.RenderPNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestRenderPNGBytesMatchesRenderPNG(t *testing.T) {
	g := NewGeometry(5)
	p := NewPosition(g, DefaultKomi)

	direct, err := p.RenderPNGBytes()
	require.NoError(t, err)
	assert.NotEmpty(t, direct)

	var buf bytes.Buffer
	require.NoError(t, p.RenderPNG(&buf))
	assert.Equal(t, buf.Bytes(), direct)
}
