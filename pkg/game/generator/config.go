package generator

import (
	"slices"

	"landmass/pkg/engine/noise"
)

// MinSeparation is the Chebyshev gap enforced between separate landmasses
const MinSeparation = 4

// Defaults for a generation run
const (
	DefaultWidth      = 50
	DefaultHeight     = 50
	DefaultNoiseScale = 0.1
	DefaultThreshold  = 0.5
)

// RandomSeed asks the SeedProvider for a seed instead of using Config.Seed
const RandomSeed int64 = 0

// Config holds the parameters of one generation run
type Config struct {
	Width      int
	Height     int
	NoiseScale float64
	Threshold  float64
	Seed       int64
	Noise      noise.Kind
}

// DefaultConfig returns the reference configuration: a 50x50 map with a random seed
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		NoiseScale: DefaultNoiseScale,
		Threshold:  DefaultThreshold,
		Seed:       RandomSeed,
		Noise:      noise.Default,
	}
}

// Validate returns a *ConfigError for the first invalid field, or nil
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Value: c.Width, Err: ErrInvalidWidth}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Value: c.Height, Err: ErrInvalidHeight}
	case !(c.NoiseScale >= 0 && c.NoiseScale <= 1):
		return &ConfigError{Field: "noise-scale", Value: c.NoiseScale, Err: ErrNoiseScaleRange}
	case !(c.Threshold >= 0 && c.Threshold <= 1):
		return &ConfigError{Field: "threshold", Value: c.Threshold, Err: ErrThresholdRange}
	case c.Noise != "" && !slices.Contains(noise.Kinds(), c.Noise):
		return &ConfigError{Field: "noise", Value: c.Noise, Err: ErrUnknownNoise}
	}
	return nil
}
