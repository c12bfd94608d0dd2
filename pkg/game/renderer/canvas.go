package renderer

// Canvas stores the tiles painted for a width×height map plus its one-cell
// border, so valid coordinates run from -1 to width (x) and -1 to height (y).
// Backends embed it and draw from it on Refresh.
type Canvas struct {
	width   int
	height  int
	tiles   []Tile
	painted []bool
}

// NewCanvas creates an empty canvas for a map of the given size
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	n := (width + 2) * (height + 2)
	c.tiles = make([]Tile, n)
	c.painted = make([]bool, n)
	return c
}

// MapSize returns the dimensions of the map the canvas was made for
func (c *Canvas) MapSize() (width, height int) {
	return c.width, c.height
}

// Cols returns the canvas width including the border
func (c *Canvas) Cols() int { return c.width + 2 }

// Rows returns the canvas height including the border
func (c *Canvas) Rows() int { return c.height + 2 }

func (c *Canvas) index(x, y int) (int, bool) {
	if x < -1 || x > c.width || y < -1 || y > c.height {
		return 0, false
	}
	return (y+1)*c.Cols() + (x + 1), true
}

// Clear erases every tile
func (c *Canvas) Clear() {
	for i := range c.tiles {
		c.tiles[i] = TileNone
		c.painted[i] = false
	}
}

// SetTile paints one tile. Positions outside the border are ignored.
func (c *Canvas) SetTile(x, y int, tile Tile) {
	idx, ok := c.index(x, y)
	if !ok {
		return
	}
	c.tiles[idx] = tile
	c.painted[idx] = true
}

// At returns the tile at (x, y) and whether it has been painted since the last Clear
func (c *Canvas) At(x, y int) (Tile, bool) {
	idx, ok := c.index(x, y)
	if !ok || !c.painted[idx] {
		return TileNone, false
	}
	return c.tiles[idx], true
}

// IsBorder reports whether (x, y) lies on the padding ring around the map
func (c *Canvas) IsBorder(x, y int) bool {
	if _, ok := c.index(x, y); !ok {
		return false
	}
	return x == -1 || y == -1 || x == c.width || y == c.height
}

// Refresh does nothing; backends embedding Canvas draw here
func (c *Canvas) Refresh() {}
