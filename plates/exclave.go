package plates

import "github.com/terragen/tectonic/hexgrid"

// Resolve eliminates exclaves: for every plate it keeps the largest
// connected component (earliest raster start wins a size tie) and reassigns
// every other fragment (plus the largest itself when it falls below the
// MinSize threshold) to the neighboring plate that shares the most border
// edges with it, lowest id on equal counts. Because absorbing a fragment can
// split the absorbing plate in turn, the sweep repeats until a pass changes
// nothing, bounded by ResolveIterationCap rounds.
//
// On a stable return every plate's member set is a single connected
// component and running Resolve again is a no-op. stable is false when the
// cap was reached first; the grid then holds the best effort so far.
//
// A fragment with no differently-labeled border (a plate covering the whole
// grid) is left alone.
//
// Returns ErrNilGrid or ErrUnlabeledCell on invalid input.
// Complexity: O(rounds × W×H×6) time, O(W×H) memory.
func Resolve(g *hexgrid.Grid) (stable bool, err error) {
	if g == nil {
		return false, ErrNilGrid
	}
	if err = requireLabeled(g); err != nil {
		return false, err
	}

	minSize := MinSize(g.Area())
	for round := 0; round < ResolveIterationCap; round++ {
		if !resolvePass(g, minSize) {
			return true, nil
		}
	}

	return false, nil
}

// resolvePass runs one sweep over all plates and reports whether any cell
// was reassigned.
func resolvePass(g *hexgrid.Grid, minSize int) (changed bool) {
	for _, id := range g.LabelIDs() {
		comps := g.Components(id)
		if len(comps) == 0 {
			continue
		}
		keep := 0
		for i := 1; i < len(comps); i++ {
			if len(comps[i]) > len(comps[keep]) {
				keep = i
			}
		}
		for i, comp := range comps {
			if i == keep && len(comp) >= minSize {
				continue
			}
			if reassign(g, id, comp) {
				changed = true
			}
		}
	}

	return changed
}

// reassign hands the fragment to its majority border neighbor. Returns false
// when the fragment touches no other plate.
func reassign(g *hexgrid.Grid, id int, comp []int) bool {
	counts := make(map[int]int)
	var nbuf [6]int
	for _, cell := range comp {
		for _, nb := range g.NeighborIndices(cell, nbuf[:0]) {
			if l := g.Labels[nb]; l != id {
				counts[l]++
			}
		}
	}
	if len(counts) == 0 {
		return false
	}

	// Majority vote; lowest id breaks ties.
	winner, votes := -1, 0
	for l, c := range counts {
		if c > votes || (c == votes && l < winner) {
			winner, votes = l, c
		}
	}
	for _, cell := range comp {
		g.Labels[cell] = winner
	}

	return true
}
