// Package plates refines a fully labeled basin grid into the final plate
// set: boundary smoothing, ridge-ordered merging, exclave elimination, and
// plate metadata aggregation.
//
// Stage order inside the pipeline:
//
//   - Smooth applies 0..n majority-vote passes over the labels; the pass
//     count encodes the requested boundary complexity (more passes → more
//     convex, geometric borders).
//   - Merge collapses adjacent basins in ascending ridge-height order,
//     never crossing ridges higher than the sensitivity threshold and never
//     dropping below the plate minimum. Raising sensitivity can only merge
//     more, so the final count is monotonically non-increasing in it. A
//     count still above the plate maximum after merging is reported as a
//     shortfall, not forced.
//   - Resolve reassigns disconnected plate fragments to the neighbor
//     sharing the most border edges, repeating until every plate is a single
//     connected component or the iteration cap trips.
//   - Relabel compacts surviving plate ids to a dense 0..count-1 range.
//   - Build aggregates per-plate size, member cells, neighbor ids, center
//     of mass, and a palette color. Pure reads, no label mutation.
//
// Determinism: merges tie-break by lowest plate-id pair, exclave
// reassignment by highest border count then lowest id, smoothing by highest
// vote then lowest id. No stage depends on map iteration order.
//
// Errors:
//
//   - ErrNilGrid:       nil *hexgrid.Grid.
//   - ErrUnlabeledCell: an Unassigned cell reached this package, which the
//     watershed postcondition is supposed to make impossible.
package plates
