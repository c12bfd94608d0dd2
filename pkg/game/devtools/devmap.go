package devtools

import (
	"strings"

	"landmass/pkg/engine/world"
)

// DevMapSize is the width and height of the developer testing map
const DevMapSize = 50

// devMargin keeps specimens far enough apart that separation leaves them alone
const devMargin = 5

// Specimen is a hand-drawn shape, rows listed top first with '#' for land
type Specimen struct {
	Name string
	Rows []string
}

// Specimens are the shapes placed on the developer testing map, one for
// each case the cleanup stages handle
var Specimens = []Specimen{
	{Name: "block", Rows: []string{
		"#####",
		"#####",
		"#####",
		"#####",
		"#####",
	}},
	{Name: "spur", Rows: []string{
		"###...",
		"######",
		"###...",
	}},
	{Name: "single", Rows: []string{
		"#",
	}},
	{Name: "diagonal", Rows: []string{
		"#...",
		".#..",
		"..#.",
		"...#",
	}},
	{Name: "close pair", Rows: []string{
		"###..###",
		"###..###",
		"###..###",
	}},
	{Name: "ring", Rows: []string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}},
	{Name: "plus", Rows: []string{
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
	}},
	{Name: "notched", Rows: []string{
		"######",
		"######",
		"##.###",
		"######",
	}},
}

// Size returns the specimen's width and height
func (s Specimen) Size() (width, height int) {
	for _, row := range s.Rows {
		width = max(width, len(row))
	}
	return width, len(s.Rows)
}

// LandCount returns how many land cells the specimen draws
func (s Specimen) LandCount() int {
	n := 0
	for _, row := range s.Rows {
		n += strings.Count(row, "#")
	}
	return n
}

// DevMap builds the DevMapSize square testing map. Specimens are placed left
// to right from the top-left corner, wrapping onto a new row of shapes when
// the current one is full, with devMargin water cells around each.
func DevMap() *world.LandMap {
	m := world.NewLandMap(DevMapSize, DevMapSize)

	col, top, rowHeight := devMargin, devMargin, 0
	for _, s := range Specimens {
		w, h := s.Size()
		if col+w > DevMapSize-devMargin {
			col = devMargin
			top += rowHeight + devMargin
			rowHeight = 0
		}
		stamp(m, s, col, top)
		col += w + devMargin
		rowHeight = max(rowHeight, h)
	}
	return m
}

// stamp draws s with its top-left cell at screen column col, screen row top
func stamp(m *world.LandMap, s Specimen, col, top int) {
	for i, row := range s.Rows {
		y := m.Height() - 1 - (top + i)
		for j, ch := range row {
			if ch == '#' {
				m.Set(col+j, y, true)
			}
		}
	}
}
