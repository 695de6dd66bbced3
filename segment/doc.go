// Package segment orchestrates the full plate-segmentation pipeline: it
// validates parameters, allocates the hex grid from an input scalar field,
// and sequences seeding, watershed growth, boundary smoothing, ridge
// merging, exclave resolution, and plate aggregation into a Result.
//
// The engine is a pure, stateless, single-shot function: one Segment call
// allocates its own grid, runs to completion on the calling goroutine with
// no internal suspension points, and holds nothing between calls.
// Concurrent callers need no locking. Wall-clock limits belong to the
// caller wrapping the call.
//
// Determinism is a hard requirement: identical (field, parameters) produce
// a bit-identical Result across runs and processes. Every stage with
// a choice point carries an explicit total tie-break order; no stage
// depends on map iteration order or randomness.
//
// Outcome model:
//
//   - Validation failures (ErrInvalidParameters, ErrGridTooSmall and the
//     hexgrid field sentinels) reject the call before any grid allocation.
//   - Field-dependent shortfalls (the final count missed the plate bounds,
//     or exclave resolution hit its iteration cap) are legitimate
//     outcomes: the closest achievable result is returned with a Flag set,
//     never silently truncated and never inflated into an error.
//   - ErrInternalInvariant (for example an unlabeled cell after growth)
//     means the engine itself is broken; it is always fatal and never
//     masked. Stage failures carry the stage name in the error text.
package segment
