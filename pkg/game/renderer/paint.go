// Package renderer defines the tile surfaces a generated map is drawn onto.
package renderer

import (
	"landmass/pkg/engine/world"
)

// TileFor returns the tile painted for a land flag
func TileFor(land bool) Tile {
	if land {
		return TileLand
	}
	return TileNone
}

// Paint clears target, paints a one-cell water border around the map and then
// every map cell. It never modifies m.
func Paint(target RenderTarget, m *world.LandMap) {
	if target == nil {
		return
	}

	target.Clear()

	w, h := m.Width(), m.Height()
	for x := -1; x <= w; x++ {
		target.SetTile(x, -1, TileNone)
		target.SetTile(x, h, TileNone)
	}
	for y := 0; y < h; y++ {
		target.SetTile(-1, y, TileNone)
		target.SetTile(w, y, TileNone)
	}

	m.ForEachCell(func(x, y int, land bool) {
		target.SetTile(x, y, TileFor(land))
	})
}
