package hexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terragen/tectonic/hexgrid"
)

// labelGrid builds a grid and paints Labels from a row-major int slice.
func labelGrid(t *testing.T, w, h int, labels []int) *hexgrid.Grid {
	t.Helper()
	g, err := hexgrid.New(w, h, false, uniformField(w, h, 0.5))
	require.NoError(t, err)
	copy(g.Labels, labels)
	return g
}

// TestComponents_SplitPlate verifies that two fragments of the same label
// separated by another label come back as two components.
//
// Layout (4×3, label 1 split by a column of label 0):
//
//	1 0 1 1
//	1 0 1 1
//	1 0 0 0
func TestComponents_SplitPlate(t *testing.T) {
	g := labelGrid(t, 4, 3, []int{
		1, 0, 1, 1,
		1, 0, 1, 1,
		1, 0, 0, 0,
	})

	comps := g.Components(1)
	require.Len(t, comps, 2, "label 1 must split into two components")

	sizes := []int{len(comps[0]), len(comps[1])}
	assert.ElementsMatch(t, []int{3, 4}, sizes)
	// Components are reported in raster order of their first cell.
	assert.Equal(t, 0, comps[0][0], "first component starts at the origin")
}

// TestComponents_HexBridgesDiagonal checks that the hex adjacency connects
// cells a square 4-neighborhood would keep apart: on an even row, (x,y) and
// (x+1,y+1) are hex neighbors.
func TestComponents_HexBridgesDiagonal(t *testing.T) {
	g := labelGrid(t, 3, 3, []int{
		1, 0, 0,
		0, 1, 0,
		0, 0, 0,
	})

	comps := g.Components(1)
	assert.Len(t, comps, 1, "(0,0) and (1,1) connect through the bottom-right hex edge")
}

// TestComponents_AbsentLabel returns no components for a label not present.
func TestComponents_AbsentLabel(t *testing.T) {
	g := labelGrid(t, 2, 2, []int{0, 0, 0, 0})
	assert.Empty(t, g.Components(3))
}

// TestLabelIDs reports sorted distinct labels and skips Unassigned.
func TestLabelIDs(t *testing.T) {
	g := labelGrid(t, 3, 2, []int{2, 0, 2, hexgrid.Unassigned, 5, 0})
	assert.Equal(t, []int{0, 2, 5}, g.LabelIDs())
}
