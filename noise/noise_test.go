package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terragen/tectonic/noise"
)

// requireUnitRange fails fast on the first out-of-range sample.
func requireUnitRange(t *testing.T, field []float64) {
	t.Helper()
	for i, v := range field {
		require.Falsef(t, v < 0 || v > 1 || math.IsNaN(v),
			"sample %d out of [0,1]: %v", i, v)
	}
}

// TestPerlin_Deterministic pins the [0,1] output contract and seed behavior:
// equal seeds reproduce the raster, different seeds do not.
func TestPerlin_Deterministic(t *testing.T) {
	p := noise.DefaultPerlinParams()
	p.Seed = 7

	first, err := noise.Perlin(64, 48, p)
	require.NoError(t, err)
	require.Len(t, first, 64*48)
	requireUnitRange(t, first)

	second, err := noise.Perlin(64, 48, p)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the field")

	p.Seed = 8
	third, err := noise.Perlin(64, 48, p)
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "different seeds must diverge")
}

// TestPerlin_RejectsBadInput covers the dimension and parameter guards.
func TestPerlin_RejectsBadInput(t *testing.T) {
	p := noise.DefaultPerlinParams()

	_, err := noise.Perlin(0, 64, p)
	assert.ErrorIs(t, err, noise.ErrBadDimensions)

	p.Scale = 0.5
	_, err = noise.Perlin(64, 64, p)
	assert.ErrorIs(t, err, noise.ErrBadParameter)

	p = noise.DefaultPerlinParams()
	p.Octaves = 0
	_, err = noise.Perlin(64, 64, p)
	assert.ErrorIs(t, err, noise.ErrBadParameter)
}

// TestSimplex_Deterministic mirrors the Perlin contract for the OpenSimplex
// generator.
func TestSimplex_Deterministic(t *testing.T) {
	p := noise.DefaultSimplexParams()
	p.Seed = 42

	first, err := noise.Simplex(48, 64, p)
	require.NoError(t, err)
	require.Len(t, first, 48*64)
	requireUnitRange(t, first)

	second, err := noise.Simplex(48, 64, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p.Seed = 43
	third, err := noise.Simplex(48, 64, p)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

// TestSimplex_RejectsBadParams checks the tighter simplex ranges.
func TestSimplex_RejectsBadParams(t *testing.T) {
	p := noise.DefaultSimplexParams()
	p.Octaves = 1 // simplex floor is 2
	_, err := noise.Simplex(64, 64, p)
	assert.ErrorIs(t, err, noise.ErrBadParameter)

	p = noise.DefaultSimplexParams()
	p.Lacunarity = 5.0
	_, err = noise.Simplex(64, 64, p)
	assert.ErrorIs(t, err, noise.ErrBadParameter)
}

// TestWorley_ModesAndMetrics runs every metric/mode pair through the range
// and determinism contract, and checks the enums are actually distinct
// rasters rather than aliases.
func TestWorley_ModesAndMetrics(t *testing.T) {
	base := noise.DefaultWorleyParams()
	base.Seed = 99

	rasters := make(map[string][]float64)
	for _, d := range []noise.Distance{noise.Euclidean, noise.Manhattan, noise.Chebyshev} {
		for _, m := range []noise.CellMode{noise.CellF1, noise.CellF2, noise.CellF1MinusF2} {
			p := base
			p.Distance, p.Mode = d, m
			field, err := noise.Worley(60, 60, p)
			require.NoError(t, err)
			requireUnitRange(t, field)
			rasters[string(d)+"/"+string(m)] = field
		}
	}

	assert.NotEqual(t, rasters["euclidean/F1"], rasters["euclidean/F2"])
	assert.NotEqual(t, rasters["euclidean/F1"], rasters["manhattan/F1"])

	again, err := noise.Worley(60, 60, noise.WorleyParams{
		Frequency: 0.1, Distance: noise.Euclidean, Mode: noise.CellF1, Seed: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, rasters["euclidean/F1"], again)
}

// TestWorley_RejectsBadEnums covers the metric and mode guards.
func TestWorley_RejectsBadEnums(t *testing.T) {
	p := noise.DefaultWorleyParams()
	p.Distance = "minkowski"
	_, err := noise.Worley(32, 32, p)
	assert.ErrorIs(t, err, noise.ErrUnknownDistance)

	p = noise.DefaultWorleyParams()
	p.Mode = "F3"
	_, err = noise.Worley(32, 32, p)
	assert.ErrorIs(t, err, noise.ErrUnknownCellMode)

	p = noise.DefaultWorleyParams()
	p.Frequency = 0.7
	_, err = noise.Worley(32, 32, p)
	assert.ErrorIs(t, err, noise.ErrBadParameter)
}

// TestNormalize pins the rescale and the constant-field collapse.
func TestNormalize(t *testing.T) {
	field := []float64{2, 4, 6}
	noise.Normalize(field)
	assert.Equal(t, []float64{0, 0.5, 1}, field)

	flat := []float64{3, 3, 3}
	noise.Normalize(flat)
	assert.Equal(t, []float64{0, 0, 0}, flat)
}

// TestSummarize checks the statistics on a hand-computable field.
func TestSummarize(t *testing.T) {
	s := noise.Summarize([]float64{0, 0.5, 1})
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 1.0, s.Max)
	assert.InDelta(t, 0.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/6.0), s.Std, 1e-12)

	assert.Equal(t, noise.Summary{}, noise.Summarize(nil))
}
