package generator

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"landmass/pkg/engine/noise"
	"landmass/pkg/engine/world"
	"landmass/pkg/game/devtools"
	"landmass/pkg/game/renderer"
)

// dynamicGet looks up translation keys. Keys are not format strings, so the
// lookup goes through a function variable to keep go vet's printf check off it.
var dynamicGet = gotext.Get

// Pipeline runs one generation and hands the result to the boundary
// collaborators. Every collaborator is optional.
type Pipeline struct {
	Config Config

	// Noise overrides the source built from Config.Noise
	Noise noise.Source
	// Seeds supplies a seed when Config.Seed is RandomSeed
	Seeds SeedProvider
	// Input replaces noise sampling with a hand-made map of the configured size
	Input *world.LandMap

	Target      renderer.RenderTarget
	Messages    renderer.MessageSink
	Diagnostics *devtools.Dumper
}

// Result is the outcome of a pipeline run
type Result struct {
	Seed       int64
	Map        *world.LandMap
	Stats      Stats
	SecondPass ProtrusionStats
	// FinalRegions counts the 4-connected landmasses left on Map
	FinalRegions int
}

// Degenerate reports a map with no land left. This is a valid result.
func (r *Result) Degenerate() bool {
	return r.Map.LandCount() == 0
}

// Run validates the configuration, generates the map, paints it, re-runs the
// cleanup pass, refreshes the target and writes diagnostics.
func (p *Pipeline) Run() (*Result, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}

	seed := resolveSeed(p.Config.Seed, p.Seeds)
	if p.Diagnostics != nil {
		if err := p.Diagnostics.Seed(seed); err != nil {
			return nil, fmt.Errorf("writing seed: %w", err)
		}
	}
	p.show(dynamicGet("SEED", seed))

	m, stats, err := p.generate(seed)
	if err != nil {
		return nil, err
	}
	res := &Result{Seed: seed, Map: m, Stats: stats}

	renderer.Paint(p.Target, m)

	// The renderer never writes back to m, so this pass finds nothing to do
	// once the first one reached its fixed point.
	res.SecondPass = RemoveProtrusions(m)
	if p.Target != nil {
		p.Target.Refresh()
	}

	res.FinalRegions = LabelRegions(m).Count
	p.report(res)

	if p.Diagnostics != nil {
		if err := p.Diagnostics.Grid(m); err != nil {
			return res, fmt.Errorf("writing grid dump: %w", err)
		}
	}

	return res, nil
}

func (p *Pipeline) generate(seed int64) (*world.LandMap, Stats, error) {
	if p.Input != nil {
		if p.Input.Width() != p.Config.Width || p.Input.Height() != p.Config.Height {
			return nil, Stats{}, fmt.Errorf("%w: input map is %dx%d, config is %dx%d", ErrInputSize,
				p.Input.Width(), p.Input.Height(), p.Config.Width, p.Config.Height)
		}
		m, stats := Refine(p.Input)
		return m, stats, nil
	}

	src := p.Noise
	if src == nil {
		var err error
		if src, err = noise.New(p.Config.Noise, seed); err != nil {
			return nil, Stats{}, &ConfigError{Field: "noise", Value: p.Config.Noise, Err: ErrUnknownNoise}
		}
	}
	m, stats := Generate(p.Config, seed, src)
	return m, stats, nil
}

func (p *Pipeline) report(res *Result) {
	p.show(dynamicGet("SEPARATION_SUMMARY", res.Stats.SeparationRemoved, res.Stats.InitialRegions))
	p.show(dynamicGet("PROTRUSION_SUMMARY", 1, res.Stats.Cleanup.Removed))
	p.show(dynamicGet("PROTRUSION_SUMMARY", 2, res.SecondPass.Removed))
	p.show(dynamicGet("MAP_SUMMARY", res.Map.Width(), res.Map.Height(), res.Map.LandCount(), res.FinalRegions))
	if res.Degenerate() {
		p.show(dynamicGet("DEGENERATE_MAP"))
	}
}

func (p *Pipeline) show(msg string) {
	if p.Messages != nil {
		p.Messages.ShowMessage(msg)
	}
}
