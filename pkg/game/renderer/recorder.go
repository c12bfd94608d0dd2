package renderer

import (
	"landmass/pkg/engine/world"
)

// Op is one recorded render command
type Op int

const (
	OpClear Op = iota
	OpSetTile
	OpRefresh
)

// Command is a RenderTarget call captured by Recorder
type Command struct {
	Op   Op
	X, Y int
	Tile Tile
}

// Recorder is an in-memory RenderTarget and MessageSink for headless runs.
// It keeps every command in order plus the resulting tile state.
type Recorder struct {
	Commands  []Command
	Messages  []string
	Refreshes int

	tiles map[world.Point]Tile
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{tiles: make(map[world.Point]Tile)}
}

// Clear implements RenderTarget
func (r *Recorder) Clear() {
	r.Commands = append(r.Commands, Command{Op: OpClear})
	r.tiles = make(map[world.Point]Tile)
}

// SetTile implements RenderTarget
func (r *Recorder) SetTile(x, y int, tile Tile) {
	r.Commands = append(r.Commands, Command{Op: OpSetTile, X: x, Y: y, Tile: tile})
	r.tiles[world.Point{X: x, Y: y}] = tile
}

// Refresh implements RenderTarget
func (r *Recorder) Refresh() {
	r.Commands = append(r.Commands, Command{Op: OpRefresh})
	r.Refreshes++
}

// ShowMessage implements MessageSink
func (r *Recorder) ShowMessage(msg string) {
	r.Messages = append(r.Messages, msg)
}

// Tile returns the painted tile at (x, y) and whether anything was painted there
func (r *Recorder) Tile(x, y int) (Tile, bool) {
	t, ok := r.tiles[world.Point{X: x, Y: y}]
	return t, ok
}

// Painted returns the number of distinct painted positions
func (r *Recorder) Painted() int {
	return len(r.tiles)
}
