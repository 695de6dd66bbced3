// Package hexgrid defines the Grid type and sentinel errors shared by the
// plate-segmentation pipeline.
package hexgrid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a zero or negative width or height.
	ErrEmptyGrid = errors.New("hexgrid: grid must have positive width and height")
	// ErrFieldSize indicates the scalar field length differs from width×height.
	ErrFieldSize = errors.New("hexgrid: field length must equal width*height")
	// ErrFieldRange indicates a scalar field value outside [0,1] or NaN.
	ErrFieldRange = errors.New("hexgrid: field values must lie in [0,1]")
	// ErrOddWrapHeight indicates a wrapped grid with an odd height. The
	// parity offset tables only close into a torus when the row count is
	// even: an odd seam joins two same-parity rows and breaks neighbor
	// symmetry.
	ErrOddWrapHeight = errors.New("hexgrid: wrapped grids require an even height")
)

// Unassigned is the label sentinel for cells not yet claimed by any plate.
const Unassigned = -1

// Coord is an (X,Y) cell position on the lattice.
type Coord struct {
	X, Y int
}

// Grid is a rectangular lattice of flat-topped hexagons. Values holds the
// input scalar field and Labels the per-cell plate assignment, both row-major
// (index = y*Width + x). Wrap is fixed for the Grid's lifetime.
//
// Values is read-only after construction; Labels is mutated in place by the
// pipeline stages.
type Grid struct {
	Width, Height int
	Wrap          bool
	Values        []float64
	Labels        []int
}

// evenRowOffsets / oddRowOffsets are the flat-topped hexagon neighbor
// displacements. The two sets differ because odd rows sit half a cell to the
// left of even rows when the lattice is drawn. Order is fixed: left, right,
// top-left, top-right, bottom-left, bottom-right.
var (
	evenRowOffsets = [6]Coord{{-1, 0}, {1, 0}, {0, -1}, {1, -1}, {0, 1}, {1, 1}}
	oddRowOffsets  = [6]Coord{{-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {-1, 1}, {0, 1}}
)
