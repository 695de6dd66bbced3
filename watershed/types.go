// Package watershed defines sentinel errors and the heap types backing the
// priority-flood grower.
package watershed

import "errors"

// Sentinel errors for seeding and growth.
var (
	// ErrNilGrid indicates a nil *hexgrid.Grid was passed.
	ErrNilGrid = errors.New("watershed: grid is nil")

	// ErrBadPlateBounds indicates the plate bounds violate 1 ≤ min ≤ max.
	ErrBadPlateBounds = errors.New("watershed: plate bounds must satisfy 1 <= min <= max")

	// ErrNoSeeds indicates Grow was invoked with an empty seed set.
	ErrNoSeeds = errors.New("watershed: seed set is empty")

	// ErrSeedConflict indicates a seed index is out of range or duplicated.
	ErrSeedConflict = errors.New("watershed: seed index out of range or duplicated")

	// ErrUnassignedCell indicates a cell remained unlabeled after growth.
	// This never happens on a connected lattice; seeing it means the grower
	// itself is broken, so callers must treat it as fatal.
	ErrUnassignedCell = errors.New("watershed: cell left unassigned after growth")
)

// floodItem is one pending claim in the priority flood: cell (by raster
// index) would join plate at the moment the sweep reaches value. seq is the
// claim's insertion rank, assigned from a monotone counter at push time.
type floodItem struct {
	value float64 // field value of the claimed cell
	seq   int     // insertion rank, unique per claim
	cell  int     // row-major cell index
	plate int     // claiming plate id
}

// floodPQ is a min-heap of floodItem ordered by (value, seq). seq is unique,
// so the order is total and the labeling deterministic. Breaking exact value
// ties by insertion rank turns a plateau into a breadth-first wavefront: on
// a constant-value region every basin advances one ring at a time instead of
// the whole pending frontier draining in raster order, which would let the
// lowest plate id swallow the plateau.
//
// Lazy strategy: multiple claims for the same cell may coexist in the heap;
// all but the first popped are discarded because the cell is labeled by then.
type floodPQ []floodItem

// Len returns the number of pending claims.
func (pq floodPQ) Len() int { return len(pq) }

// Less orders claims by ascending value, then insertion rank.
func (pq floodPQ) Less(i, j int) bool {
	if pq[i].value != pq[j].value {
		return pq[i].value < pq[j].value
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two pending claims.
func (pq floodPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new claim x onto the heap. Called by heap.Push.
func (pq *floodPQ) Push(x interface{}) { *pq = append(*pq, x.(floodItem)) }

// Pop removes and returns the lowest-ordered claim. Called by heap.Pop.
func (pq *floodPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
