// Package watershed seeds and grows labeled basins over a hexagonal grid.
//
// The two stages run back-to-back at the head of the segmentation pipeline:
//
//   - Seeds selects local-minimum cells from the scalar field, pruned or
//     supplemented so the seed count lands inside the requested plate
//     bounds. A featureless field degrades to an evenly spaced lattice of
//     exactly minPlates seeds instead of failing.
//   - Grow performs a priority-flood watershed: cells are claimed in
//     ascending field-value order starting from the seed set, each cell
//     adopting the plate of the neighbor that reached it first. After Grow
//     returns nil every cell carries a label; this postcondition anchors
//     the correctness of everything downstream.
//
// Determinism:
//
// Every choice point has a total order. Equal-value seed candidates are
// broken by raster index (row-major, then column). Equal-value flood claims
// pop in insertion order, a breadth-first wavefront whose claim stream is
// itself generated in (plate id, raster) order, so identical inputs yield a
// bit-identical labeling across runs and processes. The wavefront rule also
// keeps a constant-value plateau split evenly between its seeds instead of
// letting the lowest plate id claim all of it.
//
// Complexity:
//
//   - Seeds: O(W×H×6 + C²) time where C = local-minimum candidates.
//   - Grow:  O(W×H × log(W×H)) time, O(W×H) memory (lazy heap entries).
//
// Errors:
//
//   - ErrNilGrid:        nil *hexgrid.Grid.
//   - ErrBadPlateBounds: plate bounds violate 1 ≤ min ≤ max.
//   - ErrNoSeeds:        Grow invoked with an empty seed set.
//   - ErrSeedConflict:   a seed index is out of range or duplicated.
//   - ErrUnassignedCell: a cell survived Grow unlabeled (invariant breach).
package watershed
