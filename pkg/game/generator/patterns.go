package generator

import (
	"landmass/pkg/engine/world"
)

// Neighborhood holds the land flags of the eight cells around a cell
type Neighborhood struct {
	E, W, N, S     bool
	NE, NW, SE, SW bool
}

// NeighborhoodAt reads the neighbourhood of (x, y); out-of-bounds cells count as water
func NeighborhoodAt(m *world.LandMap, x, y int) Neighborhood {
	return Neighborhood{
		E:  m.IsLand(x+1, y),
		W:  m.IsLand(x-1, y),
		N:  m.IsLand(x, y+1),
		S:  m.IsLand(x, y-1),
		NE: m.IsLand(x+1, y+1),
		NW: m.IsLand(x-1, y+1),
		SE: m.IsLand(x+1, y-1),
		SW: m.IsLand(x-1, y-1),
	}
}

// Count returns how many of the eight neighbours are land
func (n Neighborhood) Count() int {
	c := 0
	for _, land := range [...]bool{n.E, n.W, n.N, n.S, n.NE, n.NW, n.SE, n.SW} {
		if land {
			c++
		}
	}
	return c
}

// pat builds a Neighborhood from 0/1 flags in E, W, N, S, NE, NW, SE, SW order
func pat(e, w, n, s, ne, nw, se, sw int) Neighborhood {
	return Neighborhood{
		E: e == 1, W: w == 1, N: n == 1, S: s == 1,
		NE: ne == 1, NW: nw == 1, SE: se == 1, SW: sw == 1,
	}
}

// Patterns are the neighbourhoods that mark a cell as a protrusion: one-cell
// diagonal bridges, thin spurs and isolated corner attachments. Rows 4 and 7
// are identical; both are kept.
var Patterns = [...]Neighborhood{
	//  E  W  N  S NE NW SE SW
	pat(1, 0, 0, 0, 1, 0, 1, 0), // 1
	pat(0, 1, 0, 0, 0, 0, 0, 1), // 2
	pat(0, 1, 0, 0, 0, 1, 0, 0), // 3
	pat(0, 0, 0, 1, 0, 0, 1, 1), // 4
	pat(0, 0, 1, 0, 1, 1, 0, 0), // 5
	pat(0, 0, 0, 1, 1, 0, 1, 1), // 6
	pat(0, 0, 0, 1, 0, 0, 1, 1), // 7
	pat(0, 0, 1, 1, 0, 0, 0, 0), // 8
	pat(0, 1, 0, 0, 0, 1, 0, 1), // 9
	pat(0, 0, 1, 1, 1, 0, 0, 1), // 10
	pat(1, 1, 0, 0, 1, 0, 1, 1), // 11
	pat(0, 0, 1, 1, 0, 1, 1, 0), // 12
	pat(1, 1, 0, 0, 1, 0, 0, 1), // 13
	pat(0, 0, 1, 1, 1, 0, 1, 0), // 14
	pat(1, 1, 0, 0, 0, 1, 1, 0), // 15
	pat(1, 1, 0, 0, 1, 0, 1, 0), // 16
	pat(0, 0, 1, 1, 0, 1, 0, 0), // 17
	pat(0, 0, 1, 1, 0, 0, 0, 1), // 18
	pat(1, 1, 0, 0, 0, 1, 0, 0), // 19
	pat(1, 1, 0, 0, 1, 0, 0, 0), // 20
	pat(1, 1, 0, 0, 0, 0, 0, 1), // 21
	pat(1, 1, 0, 0, 0, 0, 1, 0), // 22
}

// SparseNeighborLimit is the largest land-neighbour count that still removes a cell
const SparseNeighborLimit = 2

// MatchesPattern reports whether n equals any entry of Patterns
func MatchesPattern(n Neighborhood) bool {
	for _, p := range Patterns {
		if p == n {
			return true
		}
	}
	return false
}

// IsProtrusion reports whether a land cell with neighbourhood n should be removed
func IsProtrusion(n Neighborhood) bool {
	return MatchesPattern(n) || n.Count() <= SparseNeighborLimit
}
