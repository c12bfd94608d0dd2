// Package tui draws generated maps to a terminal with ANSI colours.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"landmass/pkg/engine/terminal"
	"landmass/pkg/game/renderer"
)

// Icon constants for map tiles
const (
	IconLand   = "█"
	IconWater  = "·"
	IconBorder = "▒"
	IconVoid   = " "
)

// clearSequence homes the cursor and erases the screen
const clearSequence = "\033[H\033[2J"

// dynamicGet looks up translation keys. Keys are not format strings, so the
// lookup goes through a function variable to keep go vet's printf check off it.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal render target. Tiles are buffered in the
// embedded Canvas and written to out on Refresh, top row first.
type TUIRenderer struct {
	*renderer.Canvas

	out         io.Writer
	clearScreen bool
	termWidth   int

	// messages shown before the first frame are held until it is drawn
	drawn   bool
	pending []string

	colorLand   color.Style
	colorWater  color.Style
	colorBorder color.Style
	colorInfo   color.Style
	colorWarn   color.Style
}

// New creates a TUI renderer for a width×height map writing to out
func New(out io.Writer, width, height int) *TUIRenderer {
	t := &TUIRenderer{
		Canvas:      renderer.NewCanvas(width, height),
		out:         out,
		clearScreen: terminal.IsTerminal(out),
		termWidth:   termWidth(out),
	}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorLand = color.Style{color.FgGreen, color.OpBold}
	t.colorWater = color.Style{color.FgBlue}
	t.colorBorder = color.Style{color.FgGray}
	t.colorInfo = color.Style{color.FgCyan}
	t.colorWarn = color.Style{color.FgYellow, color.OpBold}
}

// Clear erases the buffered tiles and, on a terminal, the screen
func (t *TUIRenderer) Clear() {
	t.Canvas.Clear()
	t.drawn = false
	if t.clearScreen {
		fmt.Fprint(t.out, clearSequence)
	}
}

// Refresh writes the buffered map to the output, centred in the terminal
func (t *TUIRenderer) Refresh() {
	if t.Cols() > t.termWidth {
		t.warn(dynamicGet("MAP_TOO_WIDE", t.Cols(), t.termWidth))
	}
	fmt.Fprint(t.out, t.Frame())
	t.drawn = true
	for _, msg := range t.pending {
		t.ShowMessage(msg)
	}
	t.pending = nil
}

// Frame returns the styled map, one line per row from the top border down
func (t *TUIRenderer) Frame() string {
	w, h := t.MapSize()
	indent := ""
	if pad := (t.termWidth - t.Cols()) / 2; pad > 0 {
		indent = strings.Repeat(" ", pad)
	}

	var b strings.Builder
	for y := h; y >= -1; y-- {
		b.WriteString(indent)
		for x := -1; x <= w; x++ {
			b.WriteString(t.RenderTile(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderTile returns the styled icon for one canvas position
func (t *TUIRenderer) RenderTile(x, y int) string {
	tile, ok := t.At(x, y)
	switch {
	case !ok:
		return IconVoid
	case tile == renderer.TileLand:
		return t.colorLand.Sprint(IconLand)
	case t.IsBorder(x, y):
		return t.colorBorder.Sprint(IconBorder)
	default:
		return t.colorWater.Sprint(IconWater)
	}
}

// ShowMessage prints a status line below the map
func (t *TUIRenderer) ShowMessage(msg string) {
	if !t.drawn {
		t.pending = append(t.pending, msg)
		return
	}
	fmt.Fprintln(t.out, t.colorInfo.Sprint(msg))
}

func (t *TUIRenderer) warn(msg string) {
	fmt.Fprintln(t.out, t.colorWarn.Sprint(msg))
}

func termWidth(out io.Writer) int {
	w, _ := terminal.SizeOf(out)
	return w
}
