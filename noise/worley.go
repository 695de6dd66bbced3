package noise

import (
	"math"
	"math/rand"
)

// Worley renders a width×height cellular-noise raster normalized to [0,1].
//
// One feature point is jittered into each cell of a lattice whose pitch is
// 1/Frequency, padded two cells past the raster so border pixels see a full
// neighborhood. Each pixel takes its distance to the nearest point (F1), the
// second nearest (F2), or their difference per Mode. F1 yields plate-like
// cells with ridged borders; F1-F2 is near zero exactly on the borders.
func Worley(width, height int, p WorleyParams) ([]float64, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	const pad = 2
	cell := int(1 / p.Frequency)
	cols := width/cell + 2*pad + 1
	rows := height/cell + 2*pad + 1

	// Jitter one feature point per lattice cell, row-major, from a single
	// seeded stream.
	rng := rand.New(rand.NewSource(p.Seed))
	px := make([]float64, cols*rows)
	py := make([]float64, cols*rows)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < cols; gx++ {
			i := gy*cols + gx
			px[i] = float64((gx-pad)*cell) + rng.Float64()*float64(cell)
			py[i] = float64((gy-pad)*cell) + rng.Float64()*float64(cell)
		}
	}

	dist := distanceFunc(p.Distance)
	field := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cx, cy := x/cell+pad, y/cell+pad
			f1, f2 := math.Inf(1), math.Inf(1)
			for gy := cy - pad; gy <= cy+pad; gy++ {
				for gx := cx - pad; gx <= cx+pad; gx++ {
					if gx < 0 || gx >= cols || gy < 0 || gy >= rows {
						continue
					}
					i := gy*cols + gx
					d := dist(float64(x)-px[i], float64(y)-py[i])
					if d < f1 {
						f1, f2 = d, f1
					} else if d < f2 {
						f2 = d
					}
				}
			}
			switch p.Mode {
			case CellF2:
				field[y*width+x] = f2
			case CellF1MinusF2:
				field[y*width+x] = f2 - f1
			default:
				field[y*width+x] = f1
			}
		}
	}
	Normalize(field)

	return field, nil
}

// distanceFunc maps the metric name to its implementation over a delta.
func distanceFunc(d Distance) func(dx, dy float64) float64 {
	switch d {
	case Manhattan:
		return func(dx, dy float64) float64 { return math.Abs(dx) + math.Abs(dy) }
	case Chebyshev:
		return func(dx, dy float64) float64 { return math.Max(math.Abs(dx), math.Abs(dy)) }
	default:
		return math.Hypot
	}
}
