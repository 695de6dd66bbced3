package segment

import (
	"errors"
	"fmt"

	"github.com/terragen/tectonic/hexgrid"
	"github.com/terragen/tectonic/plates"
	"github.com/terragen/tectonic/watershed"
)

// Segment partitions the scalar field into labeled tectonic plates.
//
// field is row-major, length GridWidth×GridHeight, values in [0,1]. The
// pipeline runs seed → grow → smooth → merge → resolve → build, mutating
// one private grid in place, and hands the labels over to the returned
// Result. Field-dependent shortfalls surface as Result.Flags; every other
// failure aborts with an error naming the stage that produced it.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Segment(field []float64, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	area := p.GridWidth * p.GridHeight
	if p.MinPlates*MinPlateArea > area {
		return nil, fmt.Errorf("%w: %d plates need %d cells, grid has %d",
			ErrGridTooSmall, p.MinPlates, p.MinPlates*MinPlateArea, area)
	}

	g, err := hexgrid.New(p.GridWidth, p.GridHeight, p.WrapEdges, field)
	if err != nil {
		return nil, fmt.Errorf("segment: grid: %w", err)
	}

	seeds, err := watershed.Seeds(g, p.MinPlates, p.MaxPlates)
	if err != nil {
		return nil, fmt.Errorf("segment: seed: %w", err)
	}

	if err = watershed.Grow(g, seeds); err != nil {
		if errors.Is(err, watershed.ErrUnassignedCell) {
			return nil, fmt.Errorf("grow: %w: %v", ErrInternalInvariant, err)
		}

		return nil, fmt.Errorf("segment: grow: %w", err)
	}

	if err = plates.Smooth(g, p.Complexity.smoothPasses()); err != nil {
		return nil, fmt.Errorf("segment: smooth: %w", err)
	}

	if _, _, err = plates.Merge(g, p.Sensitivity, p.MinPlates, p.MaxPlates); err != nil {
		return nil, fmt.Errorf("segment: merge: %w", err)
	}

	var flags []Flag
	stable, err := plates.Resolve(g)
	if err != nil {
		return nil, fmt.Errorf("segment: exclave: %w", err)
	}
	if !stable {
		flags = append(flags, FlagExclaveUnstable)
	}

	// The bound flag is judged once, on the count the caller actually
	// receives. Exclave resolution can move the count after merging, in
	// either direction, so any earlier verdict would be stale.
	count := plates.Relabel(g)
	if count < p.MinPlates || count > p.MaxPlates {
		flags = append(flags, FlagPlateBoundShortfall)
	}

	// Single linear scan backing the "every cell labeled with a dense id"
	// invariant before metadata aggregation.
	for idx, l := range g.Labels {
		if l < 0 || l >= count {
			return nil, fmt.Errorf("relabel: cell %d has id %d of %d: %w",
				idx, l, count, ErrInternalInvariant)
		}
	}

	built, err := plates.Build(g)
	if err != nil {
		return nil, fmt.Errorf("segment: build: %w", err)
	}

	return &Result{
		Width:      p.GridWidth,
		Height:     p.GridHeight,
		WrapEdges:  p.WrapEdges,
		Labels:     g.Labels,
		Plates:     built,
		PlateCount: count,
		TotalCells: area,
		Flags:      flags,
	}, nil
}
