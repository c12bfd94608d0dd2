// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based map.
package world

// Point is a cell coordinate. X grows to the east, Y grows to the north.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by the given direction
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// LandMap is a fixed-size field of land flags stored row-major.
// Row 0 is the bottom of the map, row Height()-1 the top.
type LandMap struct {
	cells  []bool
	width  int
	height int
}

// NewLandMap creates an all-water map with the given dimensions
func NewLandMap(width, height int) *LandMap {
	m := &LandMap{}
	m.Build(width, height)
	return m
}

// Build (re)initializes the map with the given dimensions, clearing every cell
func (m *LandMap) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("LandMap dimensions must be positive")
	}

	m.width = width
	m.height = height
	m.cells = make([]bool, width*height)
}

// Width returns the number of columns in the map
func (m *LandMap) Width() int {
	return m.width
}

// Height returns the number of rows in the map
func (m *LandMap) Height() int {
	return m.height
}

// InBounds checks if an x/y position is within map bounds
func (m *LandMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index returns the row-major slice index of (x, y). The position must be in bounds.
func (m *LandMap) Index(x, y int) int {
	return y*m.width + x
}

// IsLand reports whether (x, y) is land. Out-of-bounds positions are never land.
func (m *LandMap) IsLand(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.cells[m.Index(x, y)]
}

// IsLandAt is IsLand for a Point
func (m *LandMap) IsLandAt(p Point) bool {
	return m.IsLand(p.X, p.Y)
}

// Set marks (x, y) as land or water. Returns false if out of bounds.
func (m *LandMap) Set(x, y int, land bool) bool {
	if !m.InBounds(x, y) {
		return false
	}
	m.cells[m.Index(x, y)] = land
	return true
}

// Fill sets every cell inside the rectangle [x0,x1]×[y0,y1] to land, clipped to the map
func (m *LandMap) Fill(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.Set(x, y, true)
		}
	}
}

// LandCount returns the number of land cells
func (m *LandMap) LandCount() int {
	n := 0
	for _, land := range m.cells {
		if land {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the map
func (m *LandMap) Clone() *LandMap {
	c := &LandMap{
		width:  m.width,
		height: m.height,
		cells:  make([]bool, len(m.cells)),
	}
	copy(c.cells, m.cells)
	return c
}

// Equal reports whether both maps have the same dimensions and cells
func (m *LandMap) Equal(other *LandMap) bool {
	if other == nil || m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ForEachCell iterates over all cells in row-major order, bottom row first
func (m *LandMap) ForEachCell(fn func(x, y int, land bool)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fn(x, y, m.cells[m.Index(x, y)])
		}
	}
}

// Neighbors returns the in-bounds points adjacent to p in the given directions
func (m *LandMap) Neighbors(p Point, dirs []Direction) []Point {
	neighbors := make([]Point, 0, len(dirs))
	for _, dir := range dirs {
		n := p.Add(dir)
		if m.InBounds(n.X, n.Y) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
