package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landmass/pkg/engine/world"
)

func TestEnforceSeparation_DistantBlocksUntouched(t *testing.T) {
	m := world.NewLandMap(30, 30)
	m.Fill(9, 14, 11, 16)
	m.Fill(19, 14, 21, 16)

	r := LabelRegions(m)
	require.Equal(t, 2, r.Count)

	out := EnforceSeparation(m, r, MinSeparation)
	assert.True(t, out.Equal(m), "blocks 10 apart must keep every cell")
}

func TestEnforceSeparation_CloseBlocksShrink(t *testing.T) {
	m := world.NewLandMap(20, 15)
	m.Fill(5, 5, 7, 7)
	m.Fill(10, 5, 12, 7)

	out := EnforceSeparation(m, LabelRegions(m), MinSeparation)

	assert.Less(t, out.LandCount(), m.LandCount())
	want := world.NewLandMap(20, 15)
	want.Fill(5, 5, 5, 7)
	want.Fill(12, 5, 12, 7)
	assert.Equal(t, rowsOf(want), rowsOf(out))
}

func TestEnforceSeparation_ExactlyMinDistanceIsRemoved(t *testing.T) {
	m := mapFromRows("#...#...#....#")
	out := EnforceSeparation(m, LabelRegions(m), MinSeparation)
	assert.Equal(t, []string{".............#"}, rowsOf(out))
}

// Cutting a region in two does not make the halves foreign to each other
// within the same pass.
func TestEnforceSeparation_DoesNotCascade(t *testing.T) {
	m := mapFromRows(
		"......",
		".#....",
		"......",
		"......",
		"......",
		"####..",
		"#..#..",
		"#..#..",
		"#..#..",
		"#..#..",
	)
	r := LabelRegions(m)
	require.Equal(t, 2, r.Count)

	out := EnforceSeparation(m, r, MinSeparation)
	assert.Equal(t, []string{
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"#..#..",
		"#..#..",
		"#..#..",
		"#..#..",
	}, rowsOf(out))
	assert.Equal(t, 2, LabelRegions(out).Count, "the arms are now separate landmasses")
}

func TestEnforceSeparation_SingleRegionKept(t *testing.T) {
	m := mapFromRows(
		"#.....#",
		"#.....#",
		"#######",
	)
	out := EnforceSeparation(m, LabelRegions(m), MinSeparation)
	assert.True(t, out.Equal(m))
}

func TestEnforceSeparation_ReturnsNewMap(t *testing.T) {
	m := mapFromRows("#.#")
	before := m.Clone()
	out := EnforceSeparation(m, LabelRegions(m), MinSeparation)

	assert.True(t, m.Equal(before), "input map must not be modified")
	assert.Equal(t, 0, out.LandCount())
}

func TestEnforceSeparation_PanicsOnMismatchedRegions(t *testing.T) {
	r := LabelRegions(world.NewLandMap(3, 3))
	assert.Panics(t, func() {
		EnforceSeparation(world.NewLandMap(4, 3), r, MinSeparation)
	})
}

func TestEnforceSeparation_Properties(t *testing.T) {
	for seed := uint64(1); seed <= 15; seed++ {
		m := randomMap(seed, 35, 25, 0.45)
		r := LabelRegions(m)
		out := EnforceSeparation(m, r, MinSeparation)

		assertSubset(t, out, m)
		out.ForEachCell(func(x, y int, land bool) {
			if !land {
				return
			}
			near := r.Touching(x, y, MinSeparation)
			if assert.Equal(t, 1, near.Size(), "seed %d cell (%d,%d)", seed, x, y) {
				assert.True(t, near.Has(r.Label(x, y)))
			}
		})
	}
}
