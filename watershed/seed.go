package watershed

import (
	"math"
	"sort"

	"github.com/terragen/tectonic/hexgrid"
)

// candidate is a prospective seed: a local minimum of the scalar field.
type candidate struct {
	value float64
	cell  int
}

// Seeds selects seed cells for basin growth, returning row-major cell
// indices in selection order (the position in the result becomes the basin's
// plate id).
//
// Selection proceeds in three steps:
//
//  1. Scan the field in raster order for local minima: cells whose value is
//     ≤ every present neighbor and strictly < at least one. The strictness
//     clause rejects plateau interiors and makes a perfectly uniform field
//     yield zero candidates.
//  2. If candidates exceed maxPlates, prune by ascending (value, raster
//     index) with a minimum mutual separation of max(W,H)/(2·√maxPlates),
//     keeping the deepest minima first. Seeding to the upper bound leaves
//     the merge stage room to collapse basins by sensitivity.
//  3. If fewer than minPlates remain, supplement from an evenly spaced
//     lattice sized to minPlates: first skipping lattice points inside the
//     separation radius of an existing seed, then, if still short, taking
//     the remaining lattice points regardless of separation.
//
// The uniform-field degenerate case therefore produces exactly minPlates
// evenly spaced seeds. All steps are deterministic.
//
// Returns ErrNilGrid or ErrBadPlateBounds on invalid input.
// Complexity: O(W×H×6 + C²) time where C = number of candidates.
func Seeds(g *hexgrid.Grid, minPlates, maxPlates int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if minPlates < 1 || minPlates > maxPlates {
		return nil, ErrBadPlateBounds
	}

	target := maxPlates
	cands := localMinima(g)

	// Deepest minima first; raster order breaks value ties.
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].value != cands[j].value {
			return cands[i].value < cands[j].value
		}

		return cands[i].cell < cands[j].cell
	})

	separation := float64(maxInt(g.Width, g.Height)) / (2 * math.Sqrt(float64(target)))
	selected := make([]int, 0, target)
	for _, c := range cands {
		if len(selected) == target {
			break
		}
		if !tooClose(g, c.cell, selected, separation) {
			selected = append(selected, c.cell)
		}
	}

	if len(selected) < minPlates {
		selected = supplement(g, selected, minPlates, separation)
	}

	return selected, nil
}

// localMinima returns all seed candidates in raster order.
func localMinima(g *hexgrid.Grid) []candidate {
	var cands []candidate
	var nbuf [6]int
	for idx := 0; idx < g.Area(); idx++ {
		v := g.Values[idx]
		atMost, strictly := true, false
		for _, n := range g.NeighborIndices(idx, nbuf[:0]) {
			if g.Values[n] < v {
				atMost = false
				break
			}
			if g.Values[n] > v {
				strictly = true
			}
		}
		if atMost && strictly {
			cands = append(cands, candidate{value: v, cell: idx})
		}
	}

	return cands
}

// supplement fills the seed set up to want entries from an evenly spaced
// lattice. Pass one respects the separation radius; pass two ignores it so
// the count is always reached.
func supplement(g *hexgrid.Grid, selected []int, want int, separation float64) []int {
	lattice := latticePoints(g, want)

	for _, cell := range lattice {
		if len(selected) == want {
			return selected
		}
		if !containsInt(selected, cell) && !tooClose(g, cell, selected, separation) {
			selected = append(selected, cell)
		}
	}
	for _, cell := range lattice {
		if len(selected) == want {
			break
		}
		if !containsInt(selected, cell) {
			selected = append(selected, cell)
		}
	}

	return selected
}

// latticePoints places n cell centers on a rows×cols lattice proportioned to
// the grid aspect ratio, emitted in raster order.
func latticePoints(g *hexgrid.Grid, n int) []int {
	rows := int(math.Round(math.Sqrt(float64(n) * float64(g.Height) / float64(g.Width))))
	if rows < 1 {
		rows = 1
	}
	if rows > n {
		rows = n
	}
	cols := (n + rows - 1) / rows

	points := make([]int, 0, n)
	for j := 0; j < rows && len(points) < n; j++ {
		for i := 0; i < cols && len(points) < n; i++ {
			x := (2*i + 1) * g.Width / (2 * cols)
			y := (2*j + 1) * g.Height / (2 * rows)
			points = append(points, g.Index(x, y))
		}
	}

	return points
}

// tooClose reports whether cell lies within separation of any selected seed.
// Distances are planar even in wrap mode, matching the pruning radius which
// is itself derived from the planar dimensions.
func tooClose(g *hexgrid.Grid, cell int, selected []int, separation float64) bool {
	x, y := g.Coordinate(cell)
	for _, s := range selected {
		sx, sy := g.Coordinate(s)
		dx, dy := float64(x-sx), float64(y-sy)
		if math.Sqrt(dx*dx+dy*dy) < separation {
			return true
		}
	}

	return false
}

func containsInt(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}

	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
