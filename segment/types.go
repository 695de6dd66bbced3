// Package segment defines the parameter record, validation bounds, result
// bundle, and sentinel errors of the segmentation engine.
package segment

import (
	"errors"
	"fmt"

	"github.com/terragen/tectonic/plates"
)

// Sentinel errors for the orchestrator.
var (
	// ErrInvalidParameters indicates an out-of-range or inconsistent
	// parameter record. Returned before any allocation.
	ErrInvalidParameters = errors.New("segment: invalid parameters")

	// ErrGridTooSmall indicates the grid area cannot host minPlates plates
	// of the minimum plate area. Returned before any segmentation work.
	ErrGridTooSmall = errors.New("segment: grid too small for requested plate count")

	// ErrUnknownComplexity indicates a complexity string outside {low,
	// medium, high}.
	ErrUnknownComplexity = errors.New("segment: unknown complexity level")

	// ErrInternalInvariant indicates a pipeline invariant was violated, such
	// as an unlabeled cell after growth. Always fatal, never recovered.
	ErrInternalInvariant = errors.New("segment: internal invariant violation")
)

// Validation bounds for SegmentationParameters. The reference deployment
// values; see DefaultParams for the defaults.
const (
	MinGridDim = 20
	MaxGridDim = 500

	MinSensitivity = 0.05
	MaxSensitivity = 0.40

	MinPlateBound = 2
	MaxPlateBound = 30

	// MinPlateArea is the capacity requirement per requested plate:
	// minPlates×MinPlateArea must not exceed the grid area.
	MinPlateArea = 100
)

// Complexity selects the boundary-smoothing intensity applied before ridge
// merging.
type Complexity int

const (
	// ComplexityLow favors smooth, convex plate borders (3 passes).
	ComplexityLow Complexity = iota
	// ComplexityMedium applies a single smoothing pass.
	ComplexityMedium
	// ComplexityHigh skips smoothing, preserving noise-driven irregularity.
	ComplexityHigh
)

// String returns the wire name of the complexity level.
func (c Complexity) String() string {
	switch c {
	case ComplexityLow:
		return "low"
	case ComplexityMedium:
		return "medium"
	case ComplexityHigh:
		return "high"
	default:
		return fmt.Sprintf("Complexity(%d)", int(c))
	}
}

// ParseComplexity converts a wire name into a Complexity level.
func ParseComplexity(s string) (Complexity, error) {
	switch s {
	case "low":
		return ComplexityLow, nil
	case "medium":
		return ComplexityMedium, nil
	case "high":
		return ComplexityHigh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownComplexity, s)
	}
}

// smoothPasses maps the complexity level to majority-vote pass counts.
func (c Complexity) smoothPasses() int {
	switch c {
	case ComplexityLow:
		return 3
	case ComplexityHigh:
		return 0
	default:
		return 1
	}
}

// Params is the SegmentationParameters record for one Segment call.
//
// Seed feeds pseudo-random collaborators upstream (noise synthesis); the
// core pipeline is deterministic by construction and does not consume it.
// WrapEdges requires an even GridHeight, since the hexagonal parity pattern
// only closes into a torus on an even row count.
type Params struct {
	GridWidth   int
	GridHeight  int
	Sensitivity float64
	MinPlates   int
	MaxPlates   int
	Complexity  Complexity
	WrapEdges   bool
	Seed        int64
}

// DefaultParams returns the reference defaults: 100×100 grid, sensitivity
// 0.15, plate bounds 4..10, medium complexity, no wrapping.
func DefaultParams() Params {
	return Params{
		GridWidth:   100,
		GridHeight:  100,
		Sensitivity: 0.15,
		MinPlates:   4,
		MaxPlates:   10,
		Complexity:  ComplexityMedium,
	}
}

// Validate checks every parameter range and the mutual plate-bound
// constraint. All violations are joined into one ErrInvalidParameters so a
// caller sees the full list at once. The grid-capacity check is separate
// (ErrGridTooSmall) because it is a property of the combination, not of any
// single parameter.
func (p Params) Validate() error {
	var problems []string
	if p.GridWidth < MinGridDim || p.GridWidth > MaxGridDim {
		problems = append(problems, fmt.Sprintf("grid width %d outside [%d,%d]", p.GridWidth, MinGridDim, MaxGridDim))
	}
	if p.GridHeight < MinGridDim || p.GridHeight > MaxGridDim {
		problems = append(problems, fmt.Sprintf("grid height %d outside [%d,%d]", p.GridHeight, MinGridDim, MaxGridDim))
	}
	if p.Sensitivity < MinSensitivity || p.Sensitivity > MaxSensitivity {
		problems = append(problems, fmt.Sprintf("sensitivity %.3f outside [%.2f,%.2f]", p.Sensitivity, MinSensitivity, MaxSensitivity))
	}
	if p.MinPlates < MinPlateBound || p.MinPlates > MaxPlateBound {
		problems = append(problems, fmt.Sprintf("min plates %d outside [%d,%d]", p.MinPlates, MinPlateBound, MaxPlateBound))
	}
	if p.MaxPlates < MinPlateBound || p.MaxPlates > MaxPlateBound {
		problems = append(problems, fmt.Sprintf("max plates %d outside [%d,%d]", p.MaxPlates, MinPlateBound, MaxPlateBound))
	}
	if p.MinPlates > p.MaxPlates {
		problems = append(problems, fmt.Sprintf("min plates %d exceeds max plates %d", p.MinPlates, p.MaxPlates))
	}
	if p.Complexity < ComplexityLow || p.Complexity > ComplexityHigh {
		problems = append(problems, fmt.Sprintf("complexity %d not in {low, medium, high}", int(p.Complexity)))
	}
	if p.WrapEdges && p.GridHeight%2 != 0 {
		problems = append(problems, fmt.Sprintf("wrapped edges require an even grid height, got %d", p.GridHeight))
	}
	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidParameters, joinProblems(problems))
}

// joinProblems renders the violation list as "a; b; c".
func joinProblems(problems []string) string {
	out := problems[0]
	for _, p := range problems[1:] {
		out += "; " + p
	}

	return out
}

// Flag marks a legitimate, field-dependent shortfall on an otherwise valid
// result.
type Flag string

const (
	// FlagPlateBoundShortfall: the final plate count missed the requested
	// [min,max] range; the result holds the closest achievable count.
	FlagPlateBoundShortfall Flag = "plate_bound_shortfall"

	// FlagExclaveUnstable: exclave resolution hit its iteration cap before
	// reaching a fixpoint; the result is the best effort at that point.
	FlagExclaveUnstable Flag = "exclave_unstable"
)

// Result is the bundle produced by one Segment call: the labeled grid, the
// plate list, and summary counters.
type Result struct {
	Width      int
	Height     int
	WrapEdges  bool
	Labels     []int
	Plates     []plates.Plate
	PlateCount int
	TotalCells int
	Flags      []Flag
}

// HasFlag reports whether the result carries the given shortfall flag.
func (r *Result) HasFlag(f Flag) bool {
	for _, g := range r.Flags {
		if g == f {
			return true
		}
	}

	return false
}
