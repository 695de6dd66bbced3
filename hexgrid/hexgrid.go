package hexgrid

import "math"

// New constructs a Grid from a flat row-major scalar field. The field is
// deep-copied to ensure the caller cannot mutate it afterwards, and every
// label starts as Unassigned.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOddWrapHeight for a
// wrapped grid with an odd height, ErrFieldSize if the field length does not
// match, ErrFieldRange if any value is NaN or outside [0,1].
// Complexity: O(W×H) time and memory.
func New(width, height int, wrap bool, field []float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if wrap && height%2 != 0 {
		return nil, ErrOddWrapHeight
	}
	if len(field) != width*height {
		return nil, ErrFieldSize
	}
	for _, v := range field {
		// NaN fails both range comparisons, so reject it explicitly.
		if v < 0 || v > 1 || math.IsNaN(v) {
			return nil, ErrFieldRange
		}
	}
	values := make([]float64, len(field))
	copy(values, field)
	labels := make([]int, len(field))
	for i := range labels {
		labels[i] = Unassigned
	}

	return &Grid{
		Width:  width,
		Height: height,
		Wrap:   wrap,
		Values: values,
		Labels: labels,
	}, nil
}

// Area returns the total cell count, Width×Height.
func (g *Grid) Area() int { return g.Width * g.Height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Neighbors appends to buf the coordinates of the up to 6 hexagonal
// neighbors of (x,y) and returns the extended slice. The offset set depends
// on row parity. With Wrap enabled, out-of-range coordinates are reduced
// modulo the grid dimensions so every cell has exactly 6 neighbors; without
// it, off-grid neighbors are omitted. Emission order is fixed (the offset
// table order), which every downstream tie-break relies on.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int, buf []Coord) []Coord {
	offsets := &evenRowOffsets
	if y%2 != 0 {
		offsets = &oddRowOffsets
	}
	for _, d := range offsets {
		nx, ny := x+d.X, y+d.Y
		if g.Wrap {
			nx = ((nx % g.Width) + g.Width) % g.Width
			ny = ((ny % g.Height) + g.Height) % g.Height
			buf = append(buf, Coord{nx, ny})
			continue
		}
		if g.InBounds(nx, ny) {
			buf = append(buf, Coord{nx, ny})
		}
	}

	return buf
}

// NeighborIndices appends the row-major indices of the neighbors of cell idx
// to buf and returns the extended slice. Same ordering contract as Neighbors.
// Complexity: O(1).
func (g *Grid) NeighborIndices(idx int, buf []int) []int {
	x, y := g.Coordinate(idx)
	var coords [6]Coord
	for _, c := range g.Neighbors(x, y, coords[:0]) {
		buf = append(buf, g.Index(c.X, c.Y))
	}

	return buf
}

// CloneLabels returns a copy of the current label slice. Used by smoothing
// passes that must read the previous generation while writing the next.
// Complexity: O(W×H).
func (g *Grid) CloneLabels() []int {
	out := make([]int, len(g.Labels))
	copy(out, g.Labels)

	return out
}
