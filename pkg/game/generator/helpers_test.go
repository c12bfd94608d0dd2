package generator

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"landmass/pkg/engine/world"
)

// mapFromRows builds a LandMap from rows drawn top row first; '#' is land.
func mapFromRows(rows ...string) *world.LandMap {
	m := world.NewLandMap(len(rows[0]), len(rows))
	for i, row := range rows {
		y := len(rows) - 1 - i
		for x, c := range row {
			m.Set(x, y, c == '#')
		}
	}
	return m
}

// rowsOf draws m top row first, the inverse of mapFromRows.
func rowsOf(m *world.LandMap) []string {
	rows := make([]string, 0, m.Height())
	for y := m.Height() - 1; y >= 0; y-- {
		var b strings.Builder
		for x := 0; x < m.Width(); x++ {
			if m.IsLand(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// randomMap fills a w×h map with land at the given density from a fixed seed.
func randomMap(seed uint64, w, h int, density float64) *world.LandMap {
	r := rand.New(rand.NewPCG(seed, 0))
	m := world.NewLandMap(w, h)
	m.ForEachCell(func(x, y int, _ bool) {
		m.Set(x, y, r.Float64() < density)
	})
	return m
}

// assertSubset fails if sub has land anywhere super does not.
func assertSubset(t *testing.T, sub, super *world.LandMap) {
	t.Helper()
	sub.ForEachCell(func(x, y int, land bool) {
		if land && !super.IsLand(x, y) {
			t.Errorf("cell (%d,%d) became land", x, y)
		}
	})
}

// countComponents counts 4-connected land components with a recursive
// flood fill, independent of LabelRegions.
func countComponents(m *world.LandMap) int {
	seen := make(map[world.Point]bool)
	var visit func(x, y int)
	visit = func(x, y int) {
		p := world.Point{X: x, Y: y}
		if !m.IsLand(x, y) || seen[p] {
			return
		}
		seen[p] = true
		visit(x+1, y)
		visit(x-1, y)
		visit(x, y+1)
		visit(x, y-1)
	}

	n := 0
	m.ForEachCell(func(x, y int, land bool) {
		if land && !seen[world.Point{X: x, Y: y}] {
			n++
			visit(x, y)
		}
	})
	return n
}

// constSource returns the same value everywhere.
type constSource float64

func (c constSource) Sample(float64, float64) float64 { return float64(c) }

// cellSource maps sampled coordinates back to integer cells, for use with
// NoiseScale 1 and a small seed so the offsets stay below one cell.
type cellSource func(x, y int) float64

func (f cellSource) Sample(x, y float64) float64 {
	return f(int(math.Floor(x)), int(math.Floor(y)))
}
