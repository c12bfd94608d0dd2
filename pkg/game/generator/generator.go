// Package generator builds landmass maps: noise thresholding, region
// separation and protrusion cleanup.
package generator

import (
	"landmass/pkg/engine/noise"
	"landmass/pkg/engine/world"
)

// Stats describes what each stage of Generate did
type Stats struct {
	SampledLand       int // land cells after thresholding
	InitialRegions    int // 4-connected landmasses before separation
	SeparationRemoved int // cells removed to keep landmasses MinSeparation apart
	Cleanup           ProtrusionStats
}

// Generate samples src into a new map and runs Refine on it. The result
// depends only on cfg, seed and src.
func Generate(cfg Config, seed int64, src noise.Source) (*world.LandMap, Stats) {
	m := world.NewLandMap(cfg.Width, cfg.Height)
	Sampler{Source: src, Seed: seed, Scale: cfg.NoiseScale, Threshold: cfg.Threshold}.Fill(m)
	return Refine(m)
}

// Refine runs the separation and cleanup stages on an already thresholded
// map. m itself is left untouched.
func Refine(m *world.LandMap) (*world.LandMap, Stats) {
	var stats Stats
	stats.SampledLand = m.LandCount()

	regions := LabelRegions(m)
	stats.InitialRegions = regions.Count

	out := EnforceSeparation(m, regions, MinSeparation)
	stats.SeparationRemoved = stats.SampledLand - out.LandCount()

	stats.Cleanup = RemoveProtrusions(out)
	return out, stats
}
