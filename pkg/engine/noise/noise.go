// Package noise provides seeded, continuous 2D noise sources normalised to [0,1].
package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a deterministic, continuous 2D noise function with output in [0,1].
type Source interface {
	Sample(x, y float64) float64
}

// Kind names a noise implementation
type Kind string

// Available noise kinds
const (
	KindSimplex Kind = "simplex"
	KindPerlin  Kind = "perlin"
)

// Default is the noise kind used when none is configured
const Default = KindSimplex

// Kinds returns every supported noise kind
func Kinds() []Kind {
	return []Kind{KindSimplex, KindPerlin}
}

// New builds the named noise source for seed
func New(kind Kind, seed int64) (Source, error) {
	switch kind {
	case KindSimplex, "":
		return NewSimplex(seed), nil
	case KindPerlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("noise: unknown kind %q", kind)
	}
}

// Simplex samples OpenSimplex noise
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a normalised OpenSimplex source
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.NewNormalized(seed)}
}

// Sample returns the noise value at (x, y)
func (s *Simplex) Sample(x, y float64) float64 {
	return clamp01(s.noise.Eval2(x, y))
}

// Perlin parameters: alpha=2, beta=2, n=3 give terrain-like noise
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Perlin samples classic Perlin noise remapped from [-1,1]
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates a Perlin source
func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample returns the noise value at (x, y)
func (p *Perlin) Sample(x, y float64) float64 {
	return clamp01((p.noise.Noise2D(x, y) + 1) / 2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
