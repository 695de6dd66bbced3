package plates

import "github.com/terragen/tectonic/hexgrid"

// Smooth applies the given number of majority-vote passes to the label
// grid. In each pass every cell polls its hex neighbors; when some label
// other than the cell's own collects at least SmoothMajority votes, the cell
// flips to it in the next generation. All cells read the previous
// generation, so pass results do not depend on sweep order. Ties between
// labels with equal votes go to the lowest label id.
//
// passes ≤ 0 is a no-op, which is how the "high" complexity level preserves
// raw watershed boundaries.
//
// Returns ErrNilGrid or ErrUnlabeledCell on invalid input.
// Complexity: O(passes × W×H×6) time, O(W×H) memory.
func Smooth(g *hexgrid.Grid, passes int) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := requireLabeled(g); err != nil {
		return err
	}

	var nbuf [6]int
	for pass := 0; pass < passes; pass++ {
		next := g.CloneLabels()
		for idx := 0; idx < g.Area(); idx++ {
			if winner, votes := majorityNeighbor(g, idx, nbuf[:0]); votes >= SmoothMajority && winner != g.Labels[idx] {
				next[idx] = winner
			}
		}
		copy(g.Labels, next)
	}

	return nil
}

// majorityNeighbor tallies the labels around cell idx and returns the label
// with the most votes (lowest id on ties) plus its vote count.
func majorityNeighbor(g *hexgrid.Grid, idx int, nbuf []int) (label, votes int) {
	// At most 6 distinct labels can appear around a cell.
	var tallyLabel [6]int
	var tallyCount [6]int
	n := 0
	for _, nb := range g.NeighborIndices(idx, nbuf) {
		l := g.Labels[nb]
		found := false
		for i := 0; i < n; i++ {
			if tallyLabel[i] == l {
				tallyCount[i]++
				found = true
				break
			}
		}
		if !found {
			tallyLabel[n] = l
			tallyCount[n] = 1
			n++
		}
	}

	label, votes = -1, 0
	for i := 0; i < n; i++ {
		if tallyCount[i] > votes || (tallyCount[i] == votes && tallyLabel[i] < label) {
			label, votes = tallyLabel[i], tallyCount[i]
		}
	}

	return label, votes
}

// requireLabeled verifies the watershed postcondition still holds.
func requireLabeled(g *hexgrid.Grid) error {
	for _, l := range g.Labels {
		if l == hexgrid.Unassigned {
			return ErrUnlabeledCell
		}
	}

	return nil
}
