package watershed

import (
	"container/heap"

	"github.com/terragen/tectonic/hexgrid"
)

// Grow floods plate labels outward from the seed set until every cell is
// claimed. Seed i receives plate id i. Unlabeled cells enter the heap at
// their own field value the first time a labeled neighbor touches them; the
// lowest-valued pending cell is claimed next, so basins expand through
// valleys before climbing ridges, exactly like a rising waterline. Exact
// value ties are claimed in insertion order, so on a flat plateau every
// basin advances as a breadth-first wavefront and the seeds split the
// plateau into balanced regions.
//
// Postcondition: no cell is left hexgrid.Unassigned. The final linear scan
// enforces this and returns ErrUnassignedCell on violation; that error
// signals a bug in the grower, not a property of the input.
//
// Returns ErrNilGrid, ErrNoSeeds, or ErrSeedConflict on invalid input.
// Complexity: O(W×H × log(W×H)) time, O(W×H) memory.
func Grow(g *hexgrid.Grid, seeds []int) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(seeds) == 0 {
		return ErrNoSeeds
	}

	// Plant the seeds. Each must be a distinct in-range cell.
	for plate, cell := range seeds {
		if cell < 0 || cell >= g.Area() || g.Labels[cell] != hexgrid.Unassigned {
			return ErrSeedConflict
		}
		g.Labels[cell] = plate
	}

	pq := make(floodPQ, 0, g.Area())
	heap.Init(&pq)

	// seq ranks claims by insertion so equal-value pops stay FIFO.
	seq := 0
	var nbuf [6]int
	for plate, cell := range seeds {
		for _, n := range g.NeighborIndices(cell, nbuf[:0]) {
			if g.Labels[n] == hexgrid.Unassigned {
				heap.Push(&pq, floodItem{value: g.Values[n], seq: seq, cell: n, plate: plate})
				seq++
			}
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(floodItem)
		if g.Labels[item.cell] != hexgrid.Unassigned {
			continue // stale claim; the cell was reached earlier
		}
		g.Labels[item.cell] = item.plate

		for _, n := range g.NeighborIndices(item.cell, nbuf[:0]) {
			if g.Labels[n] == hexgrid.Unassigned {
				heap.Push(&pq, floodItem{value: g.Values[n], seq: seq, cell: n, plate: item.plate})
				seq++
			}
		}
	}

	// The lattice is connected, so the flood must have reached everything.
	for _, label := range g.Labels {
		if label == hexgrid.Unassigned {
			return ErrUnassignedCell
		}
	}

	return nil
}
