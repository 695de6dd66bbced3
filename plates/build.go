package plates

import (
	"math"
	"sort"

	"github.com/terragen/tectonic/hexgrid"
)

// Build aggregates final plate metadata from a densely labeled grid: member
// cells in raster order, size, sorted neighbor ids, center of mass (rounded
// to 2 decimals), and a palette color chosen by id modulo palette length.
// Build only reads the grid; labels are never mutated.
//
// Returns ErrNilGrid or ErrUnlabeledCell on invalid input.
// Complexity: O(W×H×6 + K log K) time, O(W×H) memory.
func Build(g *hexgrid.Grid) ([]Plate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := requireLabeled(g); err != nil {
		return nil, err
	}

	ids := g.LabelIDs()
	index := make(map[int]int, len(ids))
	out := make([]Plate, len(ids))
	for i, id := range ids {
		index[id] = i
		out[i] = Plate{
			ID:    id,
			Color: geologicalPalette[id%len(geologicalPalette)],
		}
	}

	neighborSets := make([]map[int]struct{}, len(ids))
	for i := range neighborSets {
		neighborSets[i] = make(map[int]struct{})
	}

	var nbuf [6]int
	for idx := 0; idx < g.Area(); idx++ {
		id := g.Labels[idx]
		i := index[id]
		out[i].Cells = append(out[i].Cells, idx)
		out[i].Size++

		x, y := g.Coordinate(idx)
		out[i].CenterX += float64(x)
		out[i].CenterY += float64(y)

		for _, nb := range g.NeighborIndices(idx, nbuf[:0]) {
			if l := g.Labels[nb]; l != id {
				neighborSets[i][l] = struct{}{}
			}
		}
	}

	for i := range out {
		if out[i].Size > 0 {
			out[i].CenterX = round2(out[i].CenterX / float64(out[i].Size))
			out[i].CenterY = round2(out[i].CenterY / float64(out[i].Size))
		}
		neighbors := make([]int, 0, len(neighborSets[i]))
		for l := range neighborSets[i] {
			neighbors = append(neighbors, l)
		}
		sort.Ints(neighbors)
		out[i].Neighbors = neighbors
	}

	return out, nil
}

// round2 rounds to two decimal places, matching the wire format for plate
// centers.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
