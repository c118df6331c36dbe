package board

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// String renders the position as an ASCII board: column letters across the
// top, 1-indexed rows from the bottom, matching the coordinate convention
// in StrCoord.
func (p *Position) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for col := 0; col < p.Geom.N; col++ {
		fmt.Fprintf(&b, "%s ", string(columnLetters[col]))
	}
	b.WriteByte('\n')
	for row := 0; row < p.Geom.N; row++ {
		rowNum := p.Geom.N - row
		fmt.Fprintf(&b, "%2d ", rowNum)
		for col := 0; col < p.Geom.N; col++ {
			c := p.color[p.Geom.Pt(row, col)]
			glyph := byte('.')
			switch c {
			case ToPlay:
				glyph = 'X'
			case Opponent:
				glyph = 'O'
			}
			fmt.Fprintf(&b, "%c ", glyph)
		}
		fmt.Fprintf(&b, "%d\n", rowNum)
	}
	return b.String()
}

const (
	cellPx   = 28
	marginPx = 32
)

// RenderPNG rasterizes the position to a PNG: a wood-toned grid, stone
// discs, and lettered/numbered coordinate labels: a human-checkable
// snapshot alongside the ASCII rendering. Stones of the side to move are
// drawn black, the other side's white.
func (p *Position) RenderPNG(w io.Writer) error {
	size := marginPx*2 + cellPx*(p.Geom.N-1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0xdc, 0xb3, 0x5c, 0xff}}, image.Point{}, draw.Src)

	lineColor := color.RGBA{0x30, 0x20, 0x10, 0xff}
	for i := 0; i < p.Geom.N; i++ {
		x := marginPx + i*cellPx
		drawLine(img, x, marginPx, x, size-marginPx, lineColor)
		drawLine(img, marginPx, x, size-marginPx, x, lineColor)
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(11)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(&image.Uniform{lineColor})

	pt := func(x, y int) fixed.Point26_6 {
		return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	}
	for col := 0; col < p.Geom.N; col++ {
		x := marginPx + col*cellPx - 4
		if _, err := ctx.DrawString(string(columnLetters[col]), pt(x, marginPx-10)); err != nil {
			return err
		}
	}
	for row := 0; row < p.Geom.N; row++ {
		rowNum := p.Geom.N - row
		y := marginPx + row*cellPx + 4
		if _, err := ctx.DrawString(fmt.Sprintf("%d", rowNum), pt(8, y)); err != nil {
			return err
		}
	}

	for row := 0; row < p.Geom.N; row++ {
		for col := 0; col < p.Geom.N; col++ {
			c := p.color[p.Geom.Pt(row, col)]
			if c != ToPlay && c != Opponent {
				continue
			}
			cx := marginPx + col*cellPx
			cy := marginPx + row*cellPx
			stoneColor := color.RGBA{0x10, 0x10, 0x10, 0xff}
			if c == Opponent {
				stoneColor = color.RGBA{0xf5, 0xf5, 0xf0, 0xff}
			}
			drawDisc(img, cx, cy, cellPx/2-2, stoneColor)
		}
	}

	return png.Encode(w, img)
}

// RenderPNGBytes is a convenience wrapper returning the encoded PNG.
func (p *Position) RenderPNGBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.RenderPNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			img.Set(x0, y, c)
		}
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, c)
	}
}

func drawDisc(img *image.RGBA, cx, cy, r int, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}
