package generator

import (
	"landmass/pkg/engine/noise"
	"landmass/pkg/engine/world"
)

// Per-seed offsets into the noise field
const (
	seedOffsetX = 0.0137
	seedOffsetY = 0.0291
)

// Sampler thresholds a noise field into land and water
type Sampler struct {
	Source    noise.Source
	Seed      int64
	Scale     float64
	Threshold float64
}

// Offsets returns the noise-space offsets derived from the seed
func (s Sampler) Offsets() (float64, float64) {
	return float64(s.Seed) * seedOffsetX, float64(s.Seed) * seedOffsetY
}

// IsLand reports whether the noise value at cell (x, y) exceeds the threshold
func (s Sampler) IsLand(x, y int) bool {
	offX, offY := s.Offsets()
	v := s.Source.Sample(float64(x)*s.Scale+offX, float64(y)*s.Scale+offY)
	return v > s.Threshold
}

// Fill samples every cell of m, overwriting its contents
func (s Sampler) Fill(m *world.LandMap) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			m.Set(x, y, s.IsLand(x, y))
		}
	}
}
