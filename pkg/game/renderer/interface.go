package renderer

// Tile identifies what a render target should draw in one cell
type Tile int

const (
	TileNone Tile = iota
	TileLand
)

// String returns the tile name
func (t Tile) String() string {
	switch t {
	case TileNone:
		return "none"
	case TileLand:
		return "land"
	default:
		return "unknown"
	}
}

// RenderTarget is a tile surface the generated map is painted onto.
// Implementations include the terminal (tui), Ebiten and an in-memory Recorder.
// Coordinates may extend one cell past the map on each side for the border.
type RenderTarget interface {
	// Clear removes every painted tile
	Clear()

	// SetTile paints one cell
	SetTile(x, y int, tile Tile)

	// Refresh redraws the surface after the final cleanup pass
	Refresh()
}

// MessageSink displays status messages to the user
type MessageSink interface {
	ShowMessage(msg string)
}
