package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_RangeAndDeterminism(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			a, err := New(kind, 424242)
			require.NoError(t, err)
			b, err := New(kind, 424242)
			require.NoError(t, err)

			for i := 0; i < 200; i++ {
				x := float64(i)*0.37 + 0.11
				y := float64(i)*0.53 + 0.07
				va := a.Sample(x, y)
				assert.GreaterOrEqual(t, va, 0.0)
				assert.LessOrEqual(t, va, 1.0)
				assert.Equal(t, va, b.Sample(x, y), "same seed must yield the same value at (%v,%v)", x, y)
			}
		})
	}
}

func TestSources_Smooth(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			src, err := New(kind, 7)
			require.NoError(t, err)

			const step = 1e-4
			for i := 0; i < 50; i++ {
				x := float64(i) * 0.41
				y := float64(i) * 0.29
				d := math.Abs(src.Sample(x, y) - src.Sample(x+step, y+step))
				assert.Less(t, d, 0.01, "small coordinate delta produced a large value delta at (%v,%v)", x, y)
			}
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("value", 1)
	assert.Error(t, err)

	src, err := New("", 1)
	require.NoError(t, err)
	assert.IsType(t, &Simplex{}, src)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 1.0, clamp01(1.3))
	assert.Equal(t, 0.5, clamp01(0.5))
}
