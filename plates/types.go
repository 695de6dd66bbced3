// Package plates defines the Plate record, tuning constants, and sentinel
// errors for the refinement stages.
package plates

import "errors"

// Sentinel errors for plate refinement.
var (
	// ErrNilGrid indicates a nil *hexgrid.Grid was passed.
	ErrNilGrid = errors.New("plates: grid is nil")

	// ErrUnlabeledCell indicates an Unassigned cell on a grid that should
	// already be fully labeled. Treated as fatal by the orchestrator.
	ErrUnlabeledCell = errors.New("plates: unassigned cell on labeled grid")
)

// Tuning constants shared by the refinement stages.
const (
	// MinSizeFloor is the absolute lower bound for the exclave threshold,
	// regardless of grid area.
	MinSizeFloor = 10

	// AreaDivisor scales the exclave threshold with the grid: fragments
	// smaller than area/AreaDivisor cells are exclaves.
	AreaDivisor = 100

	// SmoothMajority is the neighbor vote needed to flip a cell's label
	// during a smoothing pass (out of at most 6 neighbors).
	SmoothMajority = 4

	// ResolveIterationCap bounds the exclave fix-up rounds. Reassignment can
	// cascade, so the resolver loops to a fixpoint; hitting the cap without
	// one is reported to the caller, never hidden.
	ResolveIterationCap = 16
)

// MinSize returns the exclave size threshold for a grid of the given area:
// max(MinSizeFloor, area/AreaDivisor).
func MinSize(area int) int {
	s := area / AreaDivisor
	if s < MinSizeFloor {
		s = MinSizeFloor
	}

	return s
}

// Plate is one final labeled region. Cells holds member indices in raster
// order; Neighbors holds the sorted distinct ids reachable in one hex step.
type Plate struct {
	ID        int     `json:"id"`
	Size      int     `json:"size"`
	Cells     []int   `json:"-"`
	Neighbors []int   `json:"neighbors"`
	Color     string  `json:"color"`
	CenterX   float64 `json:"center_x"`
	CenterY   float64 `json:"center_y"`
}
