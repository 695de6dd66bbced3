package plates

import (
	"math"
	"sort"

	"github.com/terragen/tectonic/hexgrid"
)

// ridgePair is an adjacent plate pair (A < B) and the lowest field-value
// barrier on their shared border.
type ridgePair struct {
	a, b   int
	height float64
}

// Merge collapses adjacent regions whose separating ridge is at or below the
// sensitivity threshold, always taking the pair with the lowest ridge first,
// and stops once the count reaches minPlates. The ridge height between two
// regions is the minimum |v(u)−v(w)| over all adjacent cell pairs u,w
// straddling their border. Higher sensitivity therefore yields a coarser
// partition. When no eligible pair remains while the count still exceeds
// maxPlates, Merge stops and reports a shortfall instead of forcing the
// bound.
//
// The higher-numbered plate of a merged pair is absorbed into the lower one.
// Equal ridge heights resolve by (lower A, then lower B), so the merge
// sequence is a total order. Labels are left non-dense; run Relabel after.
//
// Returns the resulting region count and whether the bound was missed.
// Complexity: O(M × W×H×6) time where M = number of merges (M < 30).
func Merge(g *hexgrid.Grid, sensitivity float64, minPlates, maxPlates int) (count int, shortfall bool, err error) {
	if g == nil {
		return 0, false, ErrNilGrid
	}
	if err = requireLabeled(g); err != nil {
		return 0, false, err
	}

	count = len(g.LabelIDs())
	for count > minPlates {
		pair, ok := lowestRidge(g, sensitivity)
		if !ok {
			break
		}
		absorb(g, pair.b, pair.a)
		count--
	}
	if count > maxPlates {
		shortfall = true
	}

	return count, shortfall, nil
}

// lowestRidge scans all plate borders and returns the mergeable pair with
// the smallest (height, a, b). ok is false when no ridge is at or below the
// sensitivity ceiling.
func lowestRidge(g *hexgrid.Grid, sensitivity float64) (best ridgePair, ok bool) {
	ridges := make(map[[2]int]float64)
	var nbuf [6]int
	for idx := 0; idx < g.Area(); idx++ {
		la := g.Labels[idx]
		for _, nb := range g.NeighborIndices(idx, nbuf[:0]) {
			lb := g.Labels[nb]
			if lb <= la {
				continue // visit each unordered pair once, from its lower side
			}
			key := [2]int{la, lb}
			h := math.Abs(g.Values[idx] - g.Values[nb])
			if prev, seen := ridges[key]; !seen || h < prev {
				ridges[key] = h
			}
		}
	}

	// Deterministic selection: order candidate pairs before comparing.
	keys := make([][2]int, 0, len(ridges))
	for k := range ridges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}

		return keys[i][1] < keys[j][1]
	})

	for _, k := range keys {
		h := ridges[k]
		if h > sensitivity {
			continue
		}
		if !ok || h < best.height {
			best = ridgePair{a: k[0], b: k[1], height: h}
			ok = true
		}
	}

	return best, ok
}

// absorb rewrites every cell labeled from to the label to.
func absorb(g *hexgrid.Grid, from, to int) {
	for idx, l := range g.Labels {
		if l == from {
			g.Labels[idx] = to
		}
	}
}

// Relabel compacts the surviving plate ids to a dense 0..count-1 range,
// assigning new ids in ascending order of the old ones, and returns the
// final count. Complexity: O(W×H + K log K).
func Relabel(g *hexgrid.Grid) int {
	ids := g.LabelIDs()
	remap := make(map[int]int, len(ids))
	for dense, id := range ids {
		remap[id] = dense
	}
	for idx, l := range g.Labels {
		g.Labels[idx] = remap[l]
	}

	return len(ids)
}
