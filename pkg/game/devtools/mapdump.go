// Package devtools provides developer tools for testing and debugging generated maps.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"landmass/pkg/engine/world"
)

// DefaultDumpFilename is where DumpToFile writes when no path is given
const DefaultDumpFilename = "map.txt"

// Cell symbols in a grid dump
const (
	symbolLand  = "1 "
	symbolWater = "0 "
)

// Dumper writes diagnostics: the seed and a text dump of the final grid
type Dumper struct {
	W io.Writer
}

// NewDumper creates a Dumper writing to w
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{W: w}
}

// Seed writes the seed as decimal text on its own line
func (d *Dumper) Seed(seed int64) error {
	_, err := fmt.Fprintf(d.W, "%d\n", seed)
	return err
}

// Grid writes m from the top row (y = Height-1) down to y = 0, each row left
// to right, land as "1 " and water as "0 "
func (d *Dumper) Grid(m *world.LandMap) error {
	_, err := io.WriteString(d.W, FormatGrid(m))
	return err
}

// FormatGrid renders m in the Grid dump format
func FormatGrid(m *world.LandMap) string {
	var b strings.Builder
	b.Grow(m.Height() * (m.Width()*len(symbolLand) + 1))
	for y := m.Height() - 1; y >= 0; y-- {
		for x := 0; x < m.Width(); x++ {
			if m.IsLand(x, y) {
				b.WriteString(symbolLand)
			} else {
				b.WriteString(symbolWater)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads a FormatGrid dump back into a LandMap
func ParseGrid(dump string) (*world.LandMap, error) {
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("devtools: empty grid dump")
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Fields(line)
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("devtools: row %d has %d cells, want %d", i, len(rows[i]), len(rows[0]))
		}
	}

	h := len(rows)
	m := world.NewLandMap(len(rows[0]), h)
	for i, row := range rows {
		y := h - 1 - i
		for x, cell := range row {
			switch cell {
			case "1":
				m.Set(x, y, true)
			case "0":
			default:
				return nil, fmt.Errorf("devtools: invalid cell %q at row %d col %d", cell, i, x)
			}
		}
	}
	return m, nil
}

// DumpToFile writes the seed and grid to path (DefaultDumpFilename when empty)
// and returns the absolute path written.
func DumpToFile(path string, seed int64, m *world.LandMap) (string, error) {
	if m == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	d := NewDumper(f)
	if err := d.Seed(seed); err != nil {
		return absPath, err
	}
	if err := d.Grid(m); err != nil {
		return absPath, err
	}

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
