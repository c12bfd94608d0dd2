package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"landmass/pkg/engine/noise"
	"landmass/pkg/game/devtools"
	"landmass/pkg/game/generator"
	"landmass/pkg/game/locale"
	"landmass/pkg/game/renderer"
	"landmass/pkg/game/renderer/ebiten"
	"landmass/pkg/game/renderer/tui"
)

// Renderer names accepted by -renderer
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
	RendererNone   = "none"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var errUnknownRenderer = errors.New("unknown renderer")

// dynamicGet looks up translation keys. Keys are not format strings, so the
// lookup goes through a function variable to keep go vet's printf check off it.
var dynamicGet = gotext.Get

// Options holds the command line settings
type Options struct {
	Width       int
	Height      int
	NoiseScale  float64
	Threshold   float64
	Seed        int64
	Noise       string
	Renderer    string
	TileSize    int
	Dump        string
	Lang        string
	Diagnostics bool
	Screenshot  bool
	DevMap      bool
}

// NewOptions returns the defaults used when no flags are given
func NewOptions() Options {
	cfg := generator.DefaultConfig()
	return Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		NoiseScale:  cfg.NoiseScale,
		Threshold:   cfg.Threshold,
		Seed:        cfg.Seed,
		Noise:       string(cfg.Noise),
		Renderer:    RendererTUI,
		TileSize:    ebiten.DefaultTileSize,
		Lang:        locale.DefaultLanguage,
		Diagnostics: true,
	}
}

// Bind registers the options on fs
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "map width in cells")
	fs.IntVar(&o.Height, "height", o.Height, "map height in cells")
	fs.Float64Var(&o.NoiseScale, "noise-scale", o.NoiseScale, "noise frequency, in [0, 1]")
	fs.Float64Var(&o.Threshold, "threshold", o.Threshold, "noise value a cell must exceed to be land, in [0, 1]")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "noise seed (0 picks a random one)")
	fs.StringVar(&o.Noise, "noise", o.Noise, fmt.Sprintf("noise kind %v", noise.Kinds()))
	fs.StringVar(&o.Renderer, "renderer", o.Renderer, fmt.Sprintf("output %v", rendererNames()))
	fs.IntVar(&o.TileSize, "tile-size", o.TileSize, "window pixels per cell for the ebiten renderer")
	fs.StringVar(&o.Dump, "dump", o.Dump, "also write the seed and grid to this file")
	fs.StringVar(&o.Lang, "lang", o.Lang, fmt.Sprintf("message language %v", locale.Languages()))
	fs.BoolVar(&o.Diagnostics, "diagnostics", o.Diagnostics, "write the seed and grid dump to stderr")
	fs.BoolVar(&o.DevMap, "devmap", o.DevMap, "clean up the built-in developer testing map instead of sampling noise")
	fs.BoolVar(&o.Screenshot, "screenshot", o.Screenshot, "save an HTML snapshot of the map in the working directory")
}

// GeneratorConfig converts the options into a generation config
func (o Options) GeneratorConfig() generator.Config {
	return generator.Config{
		Width:      o.Width,
		Height:     o.Height,
		NoiseScale: o.NoiseScale,
		Threshold:  o.Threshold,
		Seed:       o.Seed,
		Noise:      noise.Kind(o.Noise),
	}
}

// linePrinter is the message sink used without a renderer
type linePrinter struct {
	w io.Writer
}

func (p linePrinter) ShowMessage(msg string) {
	fmt.Fprintln(p.w, msg)
}

// messageLog forwards messages to next and keeps a copy for the snapshot
type messageLog struct {
	next  renderer.MessageSink
	lines []string
}

func (l *messageLog) ShowMessage(msg string) {
	l.lines = append(l.lines, msg)
	l.next.ShowMessage(msg)
}

func main() {
	opts := NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	os.Exit(run(opts, os.Stdout, os.Stderr))
}

// run generates one map and returns the process exit code
func run(opts Options, stdout, stderr io.Writer) int {
	if _, err := locale.Load(opts.Lang); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}

	if opts.DevMap {
		opts.Width, opts.Height = devtools.DevMapSize, devtools.DevMapSize
	}
	p := &generator.Pipeline{
		Config: opts.GeneratorConfig(),
		Seeds:  generator.NewRandomSeeds(),
	}
	if opts.DevMap {
		p.Input = devtools.DevMap()
	}
	if opts.Diagnostics {
		p.Diagnostics = devtools.NewDumper(stderr)
	}

	var window *ebiten.EbitenRenderer
	switch opts.Renderer {
	case RendererTUI:
		t := tui.New(stdout, opts.Width, opts.Height)
		p.Target, p.Messages = t, t
	case RendererEbiten:
		if !ebiten.Available() {
			fmt.Fprintln(stderr, color.Red.Sprint(dynamicGet("EBITEN_TAG_REQUIRED")))
			return exitUsage
		}
		window = ebiten.New(opts.Width, opts.Height, opts.TileSize)
		p.Target, p.Messages = window, window
	case RendererNone:
		p.Messages = linePrinter{w: stdout}
	default:
		fmt.Fprintln(stderr, color.Red.Sprintf("%v: %q", errUnknownRenderer, opts.Renderer))
		return exitUsage
	}
	log := &messageLog{next: p.Messages}
	p.Messages = log

	res, err := p.Run()
	if err != nil {
		fmt.Fprintln(stderr, color.Red.Sprint(err))
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			return exitUsage
		}
		return exitFailed
	}

	if opts.Dump != "" {
		path, err := devtools.DumpToFile(opts.Dump, res.Seed, res.Map)
		if err != nil {
			fmt.Fprintln(stderr, color.Red.Sprint(err))
			return exitFailed
		}
		p.Messages.ShowMessage(dynamicGet("DUMP_WRITTEN", path))
	}

	if opts.Screenshot {
		path, err := devtools.SaveScreenshotHTML(".", res.Seed, res.Map, log.lines)
		if err != nil {
			fmt.Fprintln(stderr, color.Red.Sprint(err))
			return exitFailed
		}
		p.Messages.ShowMessage(dynamicGet("SCREENSHOT_WRITTEN", path))
	}

	if window != nil {
		if err := window.Run(dynamicGet("WINDOW_TITLE", res.Seed)); err != nil {
			fmt.Fprintln(stderr, color.Red.Sprint(err))
			return exitFailed
		}
	}

	return exitOK
}

// rendererNames lists the values accepted by -renderer
func rendererNames() []string {
	names := []string{RendererTUI, RendererNone}
	if ebiten.Available() {
		names = slices.Insert(names, 1, RendererEbiten)
	}
	return names
}
