// Package terminal probes the terminal a writer is attached to.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Size used when the output is not a terminal or cannot be measured
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fd returns the file descriptor behind w, if w is an *os.File
func fd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// SizeOf returns the width and height of the terminal w writes to.
// Falls back to DefaultWidth x DefaultHeight for anything else.
func SizeOf(w io.Writer) (width, height int) {
	n, ok := fd(w)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(n)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	n, ok := fd(w)
	return ok && term.IsTerminal(n)
}
