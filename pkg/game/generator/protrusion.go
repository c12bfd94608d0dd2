package generator

import (
	"github.com/zyedidia/generic/queue"

	"landmass/pkg/engine/world"
)

// ProtrusionStats summarises one RemoveProtrusions pass
type ProtrusionStats struct {
	Visited int // worklist entries dequeued
	Removed int // land cells turned to water
}

// RemoveProtrusions erodes protrusions from m in place until no cell matches
// IsProtrusion. Removal is monotone: cells only ever turn from land to water.
func RemoveProtrusions(m *world.LandMap) ProtrusionStats {
	var stats ProtrusionStats

	pending := make([]bool, m.Width()*m.Height())
	work := queue.New[world.Point]()
	enqueue := func(p world.Point) {
		idx := m.Index(p.X, p.Y)
		if pending[idx] {
			return
		}
		pending[idx] = true
		work.Enqueue(p)
	}

	m.ForEachCell(func(x, y int, land bool) {
		if land {
			enqueue(world.Point{X: x, Y: y})
		}
	})

	for !work.Empty() {
		p := work.Dequeue()
		pending[m.Index(p.X, p.Y)] = false
		stats.Visited++

		if !m.IsLandAt(p) {
			continue
		}
		if !IsProtrusion(NeighborhoodAt(m, p.X, p.Y)) {
			continue
		}

		m.Set(p.X, p.Y, false)
		stats.Removed++
		for _, n := range m.Neighbors(p, world.AllDirections()) {
			enqueue(n)
		}
	}

	return stats
}
