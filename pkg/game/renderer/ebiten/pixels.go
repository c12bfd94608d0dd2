package ebiten

import (
	"image/color"

	"landmass/pkg/game/renderer"
)

// Palette holds the colour of each kind of canvas position
type Palette struct {
	Land   color.RGBA
	Water  color.RGBA
	Border color.RGBA
	Void   color.RGBA
}

// DefaultPalette is used by New
var DefaultPalette = Palette{
	Land:   color.RGBA{R: 0x3c, G: 0x9a, B: 0x3c, A: 0xff},
	Water:  color.RGBA{R: 0x1c, G: 0x3f, B: 0x7a, A: 0xff},
	Border: color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	Void:   color.RGBA{A: 0xff},
}

func (p Palette) colorAt(c *renderer.Canvas, x, y int) color.RGBA {
	tile, ok := c.At(x, y)
	switch {
	case !ok:
		return p.Void
	case tile == renderer.TileLand:
		return p.Land
	case c.IsBorder(x, y):
		return p.Border
	default:
		return p.Water
	}
}

// fillCanvasRGBA converts the canvas into one RGBA pixel per position in buf.
// Image rows run top down, so the top border (y = height) lands in row 0.
func fillCanvasRGBA(buf []byte, c *renderer.Canvas, p Palette) {
	w, h := c.MapSize()
	cols := c.Cols()
	for y := -1; y <= h; y++ {
		row := h - y
		for x := -1; x <= w; x++ {
			base := (row*cols + x + 1) * 4
			col := p.colorAt(c, x, y)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
