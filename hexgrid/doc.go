// Package hexgrid models a rectangular lattice of flat-topped hexagons and
// the scalar field / plate labels stored on it.
//
// What:
//
//   - Grid wraps a width×height scalar field (values in [0,1]) together with
//     a per-cell plate label, both stored as flat row-major slices.
//   - Neighbors implements the 6-neighbor hexagonal adjacency with
//     row-parity offsets, optionally wrapping at the borders (torus).
//     Wrapped grids need an even height: the parity pattern only repeats
//     cleanly across the vertical seam when the row count is even, and New
//     rejects the odd case to keep adjacency symmetric.
//   - Components extracts connected components of equally-labeled cells.
//
// Why:
//
//   - Hexagonal adjacency avoids the diagonal-connectivity ambiguity of
//     square grids, which matters for watershed-style region growing.
//   - Flat row-major storage makes "every cell labeled" checkable by a
//     single linear scan and keeps traversal allocation-free.
//
// Complexity:
//
//   - Neighbors:  O(1) per cell (at most 6 offsets).
//   - Components: O(W×H×6) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height.
//   - ErrOddWrapHeight: wrap requested with an odd height.
//   - ErrFieldSize: field length does not equal width×height.
//   - ErrFieldRange: a field value is NaN or lies outside [0,1].
package hexgrid
