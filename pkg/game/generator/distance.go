package generator

import (
	"landmass/pkg/engine/world"
)

// EnforceSeparation returns a new map without any land cell that has land of
// another region within Chebyshev distance minDistance. Every decision reads
// the original m and regions, so removals never cascade within a pass.
func EnforceSeparation(m *world.LandMap, regions *Regions, minDistance int) *world.LandMap {
	if regions.Width() != m.Width() || regions.Height() != m.Height() {
		panic("EnforceSeparation: regions do not match map dimensions")
	}

	out := world.NewLandMap(m.Width(), m.Height())
	m.ForEachCell(func(x, y int, land bool) {
		if !land {
			return
		}
		if !regions.NearForeign(x, y, minDistance) {
			out.Set(x, y, true)
		}
	})
	return out
}
