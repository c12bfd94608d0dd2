//go:build ebiten

// Package ebiten shows generated maps in a desktop window.
package ebiten

import (
	"errors"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"landmass/pkg/game/renderer"
)

// DefaultTileSize is the on-screen size of one map cell in pixels
const DefaultTileSize = 8

// EbitenRenderer is a render target that keeps the painted canvas and
// displays it once Run opens the window. Q or Escape closes it.
type EbitenRenderer struct {
	*renderer.Canvas

	mu       sync.Mutex
	palette  Palette
	tileSize int
	img      *ebiten.Image
	buf      []byte
	dirty    bool
	messages []string
}

// Available reports whether this build can open a window
func Available() bool { return true }

// New creates a window renderer for a width×height map
func New(width, height, tileSize int) *EbitenRenderer {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	c := renderer.NewCanvas(width, height)
	return &EbitenRenderer{
		Canvas:   c,
		palette:  DefaultPalette,
		tileSize: tileSize,
		buf:      make([]byte, 4*c.Cols()*c.Rows()),
	}
}

// Clear erases the canvas
func (e *EbitenRenderer) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Canvas.Clear()
	e.dirty = true
}

// SetTile paints one tile
func (e *EbitenRenderer) SetTile(x, y int, tile renderer.Tile) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Canvas.SetTile(x, y, tile)
	e.dirty = true
}

// Refresh rebuilds the pixel buffer from the canvas
func (e *EbitenRenderer) Refresh() {
	e.mu.Lock()
	defer e.mu.Unlock()
	fillCanvasRGBA(e.buf, e.Canvas, e.palette)
	e.dirty = true
}

// ShowMessage queues a status line drawn over the map
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.messages = appendMessage(e.messages, msg)
}

// Update handles per-frame input.
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the canvas scaled to the tile size.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.img == nil {
		e.img = ebiten.NewImage(e.Cols(), e.Rows())
	}
	if e.dirty {
		e.img.WritePixels(e.buf)
		e.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.tileSize), float64(e.tileSize))
	screen.DrawImage(e.img, op)

	if len(e.messages) > 0 {
		ebitenutil.DebugPrint(screen, strings.Join(e.messages, "\n"))
	}
}

// Layout returns the logical screen size.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.Cols() * e.tileSize, e.Rows() * e.tileSize
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(e.Cols()*e.tileSize, e.Rows()*e.tileSize)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
