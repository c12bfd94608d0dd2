package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"landmass/pkg/engine/world"
)

func TestCanvas_PaintedMap(t *testing.T) {
	m := world.NewLandMap(4, 3)
	m.Set(1, 2, true)

	c := NewCanvas(4, 3)
	assert.Equal(t, 6, c.Cols())
	assert.Equal(t, 5, c.Rows())

	Paint(c, m)

	for y := -1; y <= 3; y++ {
		for x := -1; x <= 4; x++ {
			tile, ok := c.At(x, y)
			assert.True(t, ok, "(%d,%d) painted", x, y)
			assert.Equal(t, TileFor(m.IsLand(x, y)), tile, "(%d,%d)", x, y)
		}
	}
}

func TestCanvas_IgnoresOutsideBorder(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetTile(-2, 0, TileLand)
	c.SetTile(0, 3, TileLand)

	_, ok := c.At(-2, 0)
	assert.False(t, ok)
	_, ok = c.At(0, 3)
	assert.False(t, ok)
}

func TestCanvas_IsBorder(t *testing.T) {
	c := NewCanvas(3, 2)
	assert.True(t, c.IsBorder(-1, -1))
	assert.True(t, c.IsBorder(3, 0))
	assert.True(t, c.IsBorder(1, 2))
	assert.False(t, c.IsBorder(1, 1))
	assert.False(t, c.IsBorder(5, 5))
}

func TestCanvas_ClearForgetsTiles(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetTile(0, 0, TileLand)
	c.Clear()
	tile, ok := c.At(0, 0)
	assert.False(t, ok)
	assert.Equal(t, TileNone, tile)
}
