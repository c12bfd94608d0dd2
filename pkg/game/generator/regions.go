package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"landmass/pkg/engine/world"
)

// NoRegion labels cells that are not land
const NoRegion = 0

// Regions is a 4-connected labeling of one LandMap snapshot.
// Ids start at 1 and follow row-major discovery order.
type Regions struct {
	Labels []int
	Count  int
	width  int
	height int
}

// Width returns the labeled map's width
func (r *Regions) Width() int { return r.width }

// Height returns the labeled map's height
func (r *Regions) Height() int { return r.height }

// Label returns the region id at (x, y), or NoRegion out of bounds
func (r *Regions) Label(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return NoRegion
	}
	return r.Labels[y*r.width+x]
}

// Sizes returns the cell count of each region, indexed by id (index 0 unused)
func (r *Regions) Sizes() []int {
	sizes := make([]int, r.Count+1)
	for _, id := range r.Labels {
		if id != NoRegion {
			sizes[id]++
		}
	}
	return sizes
}

// Touching returns the distinct region ids of land cells within Chebyshev
// distance radius of (x, y), clipped to the map
func (r *Regions) Touching(x, y, radius int) mapset.Set[int] {
	ids := mapset.New[int]()
	for ny := max(0, y-radius); ny <= min(r.height-1, y+radius); ny++ {
		for nx := max(0, x-radius); nx <= min(r.width-1, x+radius); nx++ {
			if id := r.Labels[ny*r.width+nx]; id != NoRegion {
				ids.Put(id)
			}
		}
	}
	return ids
}

// NearForeign reports whether land of a region other than the one at (x, y)
// lies within Chebyshev distance radius, clipped to the map. It stops at the
// first such cell.
func (r *Regions) NearForeign(x, y, radius int) bool {
	own := r.Label(x, y)
	for ny := max(0, y-radius); ny <= min(r.height-1, y+radius); ny++ {
		for nx := max(0, x-radius); nx <= min(r.width-1, x+radius); nx++ {
			if id := r.Labels[ny*r.width+nx]; id != NoRegion && id != own {
				return true
			}
		}
	}
	return false
}

// LabelRegions flood-fills every 4-connected landmass of m with a fresh id
func LabelRegions(m *world.LandMap) *Regions {
	r := &Regions{
		Labels: make([]int, m.Width()*m.Height()),
		width:  m.Width(),
		height: m.Height(),
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.IsLand(x, y) || r.Labels[m.Index(x, y)] != NoRegion {
				continue
			}
			r.Count++
			r.fill(m, world.Point{X: x, Y: y}, r.Count)
		}
	}

	return r
}

// fill labels every land cell reachable from start via N/E/S/W with id
func (r *Regions) fill(m *world.LandMap, start world.Point, id int) {
	q := queue.New[world.Point]()
	r.Labels[m.Index(start.X, start.Y)] = id
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, n := range m.Neighbors(current, world.CardinalDirections()) {
			idx := m.Index(n.X, n.Y)
			if m.IsLandAt(n) && r.Labels[idx] == NoRegion {
				r.Labels[idx] = id
				q.Enqueue(n)
			}
		}
	}
}
