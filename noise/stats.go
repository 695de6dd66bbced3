package noise

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the per-field statistics reported alongside a generated
// raster.
type Summary struct {
	Min  float64 `json:"min_value"`
	Max  float64 `json:"max_value"`
	Mean float64 `json:"mean_value"`
	Std  float64 `json:"std_value"`
}

// Normalize rescales the field to [0,1] in place. A constant field collapses
// to all zeros rather than dividing by a zero range.
func Normalize(field []float64) {
	if len(field) == 0 {
		return
	}
	lo, hi := floats.Min(field), floats.Max(field)
	if hi == lo {
		for i := range field {
			field[i] = 0
		}
		return
	}
	floats.AddConst(-lo, field)
	floats.Scale(1/(hi-lo), field)
}

// Summarize computes the summary statistics of a field. Std is the
// population standard deviation.
func Summarize(field []float64) Summary {
	if len(field) == 0 {
		return Summary{}
	}
	return Summary{
		Min:  floats.Min(field),
		Max:  floats.Max(field),
		Mean: stat.Mean(field, nil),
		Std:  stat.PopStdDev(field, nil),
	}
}
