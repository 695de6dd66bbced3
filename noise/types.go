package noise

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the generators.
var (
	// ErrBadDimensions indicates a non-positive or oversized raster request.
	ErrBadDimensions = errors.New("noise: bad raster dimensions")

	// ErrBadParameter indicates a generator parameter outside its valid
	// range. The wrapped message names the parameter and the range.
	ErrBadParameter = errors.New("noise: parameter out of range")

	// ErrUnknownDistance indicates a Worley distance metric outside
	// {euclidean, manhattan, chebyshev}.
	ErrUnknownDistance = errors.New("noise: unknown distance function")

	// ErrUnknownCellMode indicates a Worley cell mode outside {F1, F2, F1-F2}.
	ErrUnknownCellMode = errors.New("noise: unknown cell mode")
)

// MaxDimension caps either side of a generated raster.
const MaxDimension = 4096

// PerlinParams configures fractal Perlin generation.
type PerlinParams struct {
	Scale       float64 `json:"scale"`       // detail level, [0.001, 0.1]
	Octaves     int     `json:"octaves"`     // layer count, [1, 6]
	Persistence float64 `json:"persistence"` // amplitude falloff, [0.1, 0.8]
	Lacunarity  float64 `json:"lacunarity"`  // frequency multiplier, [1.5, 3.0]
	Seed        int64   `json:"seed"`
}

// DefaultPerlinParams returns the reference defaults for continental-scale
// relief.
func DefaultPerlinParams() PerlinParams {
	return PerlinParams{Scale: 0.05, Octaves: 4, Persistence: 0.5, Lacunarity: 2.0}
}

// Validate checks every field range.
func (p PerlinParams) Validate() error {
	switch {
	case p.Scale < 0.001 || p.Scale > 0.1:
		return fmt.Errorf("%w: scale %g outside [0.001, 0.1]", ErrBadParameter, p.Scale)
	case p.Octaves < 1 || p.Octaves > 6:
		return fmt.Errorf("%w: octaves %d outside [1, 6]", ErrBadParameter, p.Octaves)
	case p.Persistence < 0.1 || p.Persistence > 0.8:
		return fmt.Errorf("%w: persistence %g outside [0.1, 0.8]", ErrBadParameter, p.Persistence)
	case p.Lacunarity < 1.5 || p.Lacunarity > 3.0:
		return fmt.Errorf("%w: lacunarity %g outside [1.5, 3.0]", ErrBadParameter, p.Lacunarity)
	}

	return nil
}

// SimplexParams configures fractal OpenSimplex generation. Simplex tolerates
// higher octave counts than Perlin, hence the wider range.
type SimplexParams struct {
	Scale       float64 `json:"scale"`       // detail level, [0.005, 0.05]
	Octaves     int     `json:"octaves"`     // layer count, [2, 8]
	Persistence float64 `json:"persistence"` // amplitude falloff, [0.2, 0.7]
	Lacunarity  float64 `json:"lacunarity"`  // frequency multiplier, [2.0, 4.0]
	Seed        int64   `json:"seed"`
}

// DefaultSimplexParams returns the reference defaults.
func DefaultSimplexParams() SimplexParams {
	return SimplexParams{Scale: 0.02, Octaves: 5, Persistence: 0.4, Lacunarity: 3.0}
}

// Validate checks every field range.
func (p SimplexParams) Validate() error {
	switch {
	case p.Scale < 0.005 || p.Scale > 0.05:
		return fmt.Errorf("%w: scale %g outside [0.005, 0.05]", ErrBadParameter, p.Scale)
	case p.Octaves < 2 || p.Octaves > 8:
		return fmt.Errorf("%w: octaves %d outside [2, 8]", ErrBadParameter, p.Octaves)
	case p.Persistence < 0.2 || p.Persistence > 0.7:
		return fmt.Errorf("%w: persistence %g outside [0.2, 0.7]", ErrBadParameter, p.Persistence)
	case p.Lacunarity < 2.0 || p.Lacunarity > 4.0:
		return fmt.Errorf("%w: lacunarity %g outside [2.0, 4.0]", ErrBadParameter, p.Lacunarity)
	}

	return nil
}

// Distance selects the Worley metric.
type Distance string

// Worley distance metrics.
const (
	Euclidean Distance = "euclidean"
	Manhattan Distance = "manhattan"
	Chebyshev Distance = "chebyshev"
)

// CellMode selects which feature-point distances form the Worley value.
type CellMode string

// Worley cell modes: nearest point, second nearest, or their difference
// (which is near zero on cell borders).
const (
	CellF1        CellMode = "F1"
	CellF2        CellMode = "F2"
	CellF1MinusF2 CellMode = "F1-F2"
)

// WorleyParams configures cellular noise generation.
type WorleyParams struct {
	Frequency float64  `json:"frequency"` // feature-point density, [0.05, 0.5]
	Distance  Distance `json:"distance_function"`
	Mode      CellMode `json:"cell_type"`
	Seed      int64    `json:"seed"`
}

// DefaultWorleyParams returns the reference defaults: euclidean F1 cells,
// which read as pre-fractured plates.
func DefaultWorleyParams() WorleyParams {
	return WorleyParams{Frequency: 0.1, Distance: Euclidean, Mode: CellF1}
}

// Validate checks the frequency range and the enum fields.
func (p WorleyParams) Validate() error {
	if p.Frequency < 0.05 || p.Frequency > 0.5 {
		return fmt.Errorf("%w: frequency %g outside [0.05, 0.5]", ErrBadParameter, p.Frequency)
	}
	switch p.Distance {
	case Euclidean, Manhattan, Chebyshev:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDistance, p.Distance)
	}
	switch p.Mode {
	case CellF1, CellF2, CellF1MinusF2:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCellMode, p.Mode)
	}

	return nil
}

// checkDims validates raster dimensions shared by all generators.
func checkDims(width, height int) error {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (max side %d)", ErrBadDimensions, width, height, MaxDimension)
	}

	return nil
}
