package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when fewer than two measurement
	// points are available for a fit.
	ErrInsufficientData = errors.New("at least 2 data points are required")

	// ErrDegenerateInput is returned when the input leaves a quantity
	// undefined: zero-variance fringe counts, zero slope or zero fringe
	// range feeding a division.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Series is an ordered sequence of (fringe count, mirror displacement)
// measurements taken during a single run. Fringe counts are assumed to be
// non-decreasing in acquisition order. A Series is never mutated after
// construction; corrections produce a new Series.
type Series struct {
	fringes       []float64
	displacements []float64
}

// NewSeries builds a Series from parallel fringe-count and displacement
// slices. The slices are copied, so callers keep ownership of theirs.
func NewSeries(fringes, displacements []float64) (Series, error) {
	if len(fringes) != len(displacements) {
		return Series{}, fmt.Errorf(
			"fringe and displacement counts differ: %d vs %d",
			len(fringes), len(displacements),
		)
	}
	s := Series{
		fringes:       make([]float64, len(fringes)),
		displacements: make([]float64, len(displacements)),
	}
	copy(s.fringes, fringes)
	copy(s.displacements, displacements)
	return s, nil
}

func (s Series) Len() int {
	return len(s.fringes)
}

// Fringe returns the fringe count of point i.
func (s Series) Fringe(i int) float64 {
	return s.fringes[i]
}

// Displacement returns the mirror displacement of point i, in mm.
func (s Series) Displacement(i int) float64 {
	return s.displacements[i]
}

// Fringes returns a copy of the fringe counts.
func (s Series) Fringes() []float64 {
	out := make([]float64, len(s.fringes))
	copy(out, s.fringes)
	return out
}

// Displacements returns a copy of the displacements, in mm.
func (s Series) Displacements() []float64 {
	out := make([]float64, len(s.displacements))
	copy(out, s.displacements)
	return out
}

// FringeRange returns max − min over the fringe counts, 0 for an empty
// series.
func (s Series) FringeRange() float64 {
	if len(s.fringes) == 0 {
		return 0
	}
	min, max := s.fringes[0], s.fringes[0]
	for _, f := range s.fringes[1:] {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return max - min
}

// WithDisplacements returns a new Series with the same fringe counts and
// the given displacements. Used by the correctors, which rewrite
// displacements but never fringe counts.
func (s Series) WithDisplacements(displacements []float64) (Series, error) {
	return NewSeries(s.fringes, displacements)
}
