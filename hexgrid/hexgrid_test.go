package hexgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terragen/tectonic/hexgrid"
)

// uniformField returns a w×h field filled with value v.
func uniformField(w, h int, v float64) []float64 {
	f := make([]float64, w*h)
	for i := range f {
		f[i] = v
	}
	return f
}

// TestNew_Validation verifies the construction sentinels: bad dimensions,
// mismatched field length and out-of-range values.
func TestNew_Validation(t *testing.T) {
	_, err := hexgrid.New(0, 5, false, nil)
	assert.ErrorIs(t, err, hexgrid.ErrEmptyGrid, "zero width must error")

	_, err = hexgrid.New(3, 3, false, make([]float64, 8))
	assert.ErrorIs(t, err, hexgrid.ErrFieldSize, "short field must error")

	bad := uniformField(3, 3, 0.5)
	bad[4] = 1.5
	_, err = hexgrid.New(3, 3, false, bad)
	assert.ErrorIs(t, err, hexgrid.ErrFieldRange, "value > 1 must error")

	nan := uniformField(3, 3, 0.5)
	nan[2] = math.NaN()
	_, err = hexgrid.New(3, 3, false, nan)
	assert.ErrorIs(t, err, hexgrid.ErrFieldRange, "NaN must error")
}

// TestNew_RejectsOddWrappedHeight pins down the torus parity constraint: an
// odd height would place two same-parity rows across the vertical seam and
// their offset tables disagree, producing one-way neighbor edges.
func TestNew_RejectsOddWrappedHeight(t *testing.T) {
	_, err := hexgrid.New(9, 7, true, uniformField(9, 7, 0))
	assert.ErrorIs(t, err, hexgrid.ErrOddWrapHeight)

	_, err = hexgrid.New(9, 7, false, uniformField(9, 7, 0))
	assert.NoError(t, err, "odd height without wrap is fine")

	_, err = hexgrid.New(9, 8, true, uniformField(9, 8, 0))
	assert.NoError(t, err, "even height wraps cleanly")
}

// TestNew_DeepCopiesField ensures mutating the input slice after New does
// not leak into the grid.
func TestNew_DeepCopiesField(t *testing.T) {
	field := uniformField(4, 4, 0.25)
	g, err := hexgrid.New(4, 4, false, field)
	require.NoError(t, err)

	field[0] = 0.99
	assert.Equal(t, 0.25, g.Values[0], "grid must own its field copy")
}

// TestIndexCoordinate_RoundTrip checks Index/Coordinate are inverse over the
// whole lattice.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := hexgrid.New(7, 5, false, uniformField(7, 5, 0))
	require.NoError(t, err)

	for idx := 0; idx < g.Area(); idx++ {
		x, y := g.Coordinate(idx)
		assert.Equal(t, idx, g.Index(x, y))
	}
}

// TestNeighbors_CountNoWrap verifies interior cells see 6 neighbors while
// border cells see fewer when wrapping is disabled.
func TestNeighbors_CountNoWrap(t *testing.T) {
	g, err := hexgrid.New(10, 10, false, uniformField(10, 10, 0))
	require.NoError(t, err)

	var buf []hexgrid.Coord
	interior := g.Neighbors(5, 5, buf[:0])
	assert.Len(t, interior, 6, "interior cell has 6 neighbors")

	for _, c := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		n := g.Neighbors(c[0], c[1], nil)
		assert.Less(t, len(n), 6, "corner (%d,%d) must have <6 neighbors", c[0], c[1])
	}
}

// TestNeighbors_CountWrap verifies the toroidal topology: every cell,
// including corners, has exactly 6 neighbors.
func TestNeighbors_CountWrap(t *testing.T) {
	g, err := hexgrid.New(8, 6, true, uniformField(8, 6, 0))
	require.NoError(t, err)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := g.Neighbors(x, y, nil)
			require.Len(t, n, 6, "cell (%d,%d) must have 6 wrapped neighbors", x, y)
			for _, c := range n {
				assert.True(t, g.InBounds(c.X, c.Y), "wrapped neighbor must be in bounds")
			}
		}
	}
}

// TestNeighbors_Symmetry checks A ∈ neighbors(B) ⇔ B ∈ neighbors(A) on every
// constructible topology, including the wrapped seam rows where the parity
// offset tables have to agree across the border.
func TestNeighbors_Symmetry(t *testing.T) {
	cases := []struct {
		w, h int
		wrap bool
	}{
		{9, 7, false},
		{10, 10, false},
		{9, 8, true},
		{8, 6, true},
	}
	for _, tc := range cases {
		g, err := hexgrid.New(tc.w, tc.h, tc.wrap, uniformField(tc.w, tc.h, 0))
		require.NoError(t, err)

		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				for _, c := range g.Neighbors(x, y, nil) {
					back := g.Neighbors(c.X, c.Y, nil)
					assert.Contains(t, back, hexgrid.Coord{X: x, Y: y},
						"%dx%d wrap=%v: (%d,%d) must be neighbor of (%d,%d)",
						tc.w, tc.h, tc.wrap, x, y, c.X, c.Y)
				}
			}
		}
	}
}

// TestNeighbors_ParityOffsets pins the exact offset sets: even and odd rows
// use different top/bottom displacement columns.
func TestNeighbors_ParityOffsets(t *testing.T) {
	g, err := hexgrid.New(10, 10, false, uniformField(10, 10, 0))
	require.NoError(t, err)

	even := g.Neighbors(4, 4, nil)
	assert.Equal(t, []hexgrid.Coord{
		{X: 3, Y: 4}, {X: 5, Y: 4},
		{X: 4, Y: 3}, {X: 5, Y: 3},
		{X: 4, Y: 5}, {X: 5, Y: 5},
	}, even, "even-row offsets")

	odd := g.Neighbors(4, 5, nil)
	assert.Equal(t, []hexgrid.Coord{
		{X: 3, Y: 5}, {X: 5, Y: 5},
		{X: 3, Y: 4}, {X: 4, Y: 4},
		{X: 3, Y: 6}, {X: 4, Y: 6},
	}, odd, "odd-row offsets")
}

// TestCloneLabels verifies the clone is detached from the live labels.
func TestCloneLabels(t *testing.T) {
	g, err := hexgrid.New(3, 3, false, uniformField(3, 3, 0.5))
	require.NoError(t, err)

	snap := g.CloneLabels()
	g.Labels[0] = 7
	assert.Equal(t, hexgrid.Unassigned, snap[0], "clone must not track later writes")
}
