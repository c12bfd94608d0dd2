package generator

import (
	"math/rand/v2"
	"time"
)

// Range of seeds handed out by RandomSeeds: [MinRandomSeed, MaxRandomSeed)
const (
	MinRandomSeed int64 = 100000
	MaxRandomSeed int64 = 999999
)

// SeedProvider supplies a seed when the configuration asks for a random one
type SeedProvider interface {
	Seed() int64
}

// RandomSeeds draws six-digit seeds from a PCG stream
type RandomSeeds struct {
	r *rand.Rand
}

// NewRandomSeeds seeds the stream from the wall clock
func NewRandomSeeds() *RandomSeeds {
	return NewRandomSeedsFrom(time.Now().UnixNano())
}

// NewRandomSeedsFrom creates a reproducible seed stream
func NewRandomSeedsFrom(source int64) *RandomSeeds {
	return &RandomSeeds{r: rand.New(rand.NewPCG(uint64(source), 0))}
}

// Seed returns a seed in [MinRandomSeed, MaxRandomSeed)
func (s *RandomSeeds) Seed() int64 {
	return MinRandomSeed + s.r.Int64N(MaxRandomSeed-MinRandomSeed)
}

// FixedSeed always returns the same seed
type FixedSeed int64

// Seed returns the fixed value
func (f FixedSeed) Seed() int64 { return int64(f) }

// resolveSeed returns the configured seed, or one from seeds for RandomSeed
func resolveSeed(configured int64, seeds SeedProvider) int64 {
	if configured != RandomSeed {
		return configured
	}
	if seeds == nil {
		seeds = NewRandomSeeds()
	}
	return seeds.Seed()
}
