//go:build !ebiten

// Package ebiten shows generated maps in a desktop window. Without the
// 'ebiten' build tag it only buffers the canvas.
package ebiten

import (
	"errors"

	"landmass/pkg/game/renderer"
)

// ErrNotBuilt is returned by Run when the binary lacks the 'ebiten' tag
var ErrNotBuilt = errors.New("ebiten: window support requires building with the 'ebiten' tag")

// DefaultTileSize is the on-screen size of one map cell in pixels
const DefaultTileSize = 8

// EbitenRenderer is a placeholder that satisfies the render target API
// in the headless build.
type EbitenRenderer struct {
	*renderer.Canvas

	messages []string
}

// Available reports whether this build can open a window
func Available() bool { return false }

// New creates a headless canvas for a width×height map
func New(width, height, tileSize int) *EbitenRenderer {
	return &EbitenRenderer{Canvas: renderer.NewCanvas(width, height)}
}

// ShowMessage keeps the most recent status lines
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.messages = appendMessage(e.messages, msg)
}

// Run always reports that the build tag is missing.
func (e *EbitenRenderer) Run(string) error {
	return ErrNotBuilt
}
