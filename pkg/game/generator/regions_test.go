package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"landmass/pkg/engine/world"
)

// Grid (top row first):
//
//	. # # .
//	# # . .
//	. . # #
//
// Two 4-connected islands of sizes 4 and 2. The bottom-row island is found
// first by the row-major scan, so it gets id 1.
func TestLabelRegions_Simple(t *testing.T) {
	m := mapFromRows(
		".##.",
		"##..",
		"..##",
	)
	r := LabelRegions(m)

	require.Equal(t, 2, r.Count)
	assert.Equal(t, 1, r.Label(2, 0))
	assert.Equal(t, 1, r.Label(3, 0))
	assert.Equal(t, 2, r.Label(0, 1))
	assert.Equal(t, 2, r.Label(1, 2))
	assert.Equal(t, NoRegion, r.Label(3, 2))
	assert.Equal(t, []int{0, 2, 4}, r.Sizes())
}

// Diagonal contact never joins regions.
func TestLabelRegions_DiagonalsAreSeparate(t *testing.T) {
	m := mapFromRows(
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
	)
	r := LabelRegions(m)
	assert.Equal(t, 9, r.Count)
	for _, size := range r.Sizes()[1:] {
		assert.Equal(t, 1, size)
	}
}

func TestLabelRegions_EmptyAndFull(t *testing.T) {
	empty := world.NewLandMap(6, 4)
	assert.Equal(t, 0, LabelRegions(empty).Count)

	full := world.NewLandMap(6, 4)
	full.Fill(0, 0, 5, 3)
	r := LabelRegions(full)
	assert.Equal(t, 1, r.Count)
	assert.Equal(t, 24, r.Sizes()[1])
}

func TestLabelRegions_OutOfBoundsLabel(t *testing.T) {
	r := LabelRegions(mapFromRows("#"))
	assert.Equal(t, NoRegion, r.Label(-1, 0))
	assert.Equal(t, NoRegion, r.Label(0, 1))
	assert.Equal(t, 1, r.Label(0, 0))
}

func TestLabelRegions_MatchesIndependentCount(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		m := randomMap(seed, 23, 17, 0.55)
		r := LabelRegions(m)

		assert.Equal(t, countComponents(m), r.Count, "seed %d", seed)

		// Ids are exactly 1..Count.
		ids := mapset.New[int]()
		m.ForEachCell(func(x, y int, land bool) {
			id := r.Label(x, y)
			if !land {
				assert.Equal(t, NoRegion, id)
				return
			}
			assert.GreaterOrEqual(t, id, 1)
			ids.Put(id)

			// 4-adjacent land shares an id.
			for _, dir := range world.CardinalDirections() {
				n := world.Point{X: x, Y: y}.Add(dir)
				if m.IsLandAt(n) {
					assert.Equal(t, id, r.Label(n.X, n.Y), "seed %d (%d,%d)->%v", seed, x, y, dir)
				}
			}
		})
		assert.Equal(t, r.Count, ids.Size())
		for id := 1; id <= r.Count; id++ {
			assert.True(t, ids.Has(id), "seed %d missing id %d", seed, id)
		}
	}
}

func TestLabelRegions_Deterministic(t *testing.T) {
	m := randomMap(99, 40, 40, 0.5)
	a := LabelRegions(m)
	b := LabelRegions(m.Clone())
	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Count, b.Count)
}

func TestRegions_Touching(t *testing.T) {
	m := mapFromRows(
		"#....",
		".....",
		"....#",
	)
	r := LabelRegions(m)
	require.Equal(t, 2, r.Count)

	assert.Equal(t, 1, r.Touching(4, 0, 1).Size())
	assert.Equal(t, 2, r.Touching(2, 1, 2).Size())
	assert.Equal(t, 0, r.Touching(2, 1, 1).Size())

	// The window is clipped at the map edge.
	near := r.Touching(0, 2, 10)
	assert.True(t, near.Has(1))
	assert.True(t, near.Has(2))
}

func TestRegions_NearForeign(t *testing.T) {
	m := mapFromRows(
		"#....",
		".....",
		"....#",
	)
	r := LabelRegions(m)

	assert.False(t, r.NearForeign(4, 0, 3))
	assert.True(t, r.NearForeign(4, 0, 4))
	assert.True(t, r.NearForeign(0, 2, 10))
	assert.False(t, LabelRegions(mapFromRows("##", "##")).NearForeign(0, 0, 5))
}

func TestRegions_NearForeignMatchesTouching(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		m := randomMap(seed, 30, 20, 0.4)
		r := LabelRegions(m)
		m.ForEachCell(func(x, y int, land bool) {
			if !land {
				return
			}
			want := r.Touching(x, y, MinSeparation).Size() > 1
			assert.Equal(t, want, r.NearForeign(x, y, MinSeparation), "seed %d cell (%d,%d)", seed, x, y)
		})
	}
}
