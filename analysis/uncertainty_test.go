package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"michelson/entity"
)

// TestCombineUncertainty_Quadrature verifies the two error sources add in
// quadrature and come back as a percentage.
func TestCombineUncertainty_Quadrature(t *testing.T) {
	slope, stdErr := 3.16e-4, 1.0e-6
	fringeRange := 550.0

	got, err := CombineUncertainty(slope, stdErr, fringeRange, 0.5)
	require.NoError(t, err)

	slopeRel := stdErr / slope
	readingRel := 0.5 / fringeRange
	want := 100 * math.Sqrt(slopeRel*slopeRel+readingRel*readingRel)
	assert.InDelta(t, want, got, 1e-12)
}

// TestCombineUncertainty_ScaleInvariant verifies that scaling slope and its
// standard error by a common factor leaves the relative figure unchanged.
func TestCombineUncertainty_ScaleInvariant(t *testing.T) {
	base, err := CombineUncertainty(3.16e-4, 1.0e-6, 550, 0.5)
	require.NoError(t, err)

	for _, k := range []float64{0.5, 2, 10, 1000} {
		scaled, err := CombineUncertainty(3.16e-4*k, 1.0e-6*k, 550, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, base, scaled, 1e-9, "factor %g", k)
	}
}

// TestCombineUncertainty_ReadingDominates verifies a perfect fit still
// reports the fringe-reading granularity.
func TestCombineUncertainty_ReadingDominates(t *testing.T) {
	got, err := CombineUncertainty(3.16e-4, 0, 500, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 100*0.5/500, got, 1e-12)
}

func TestCombineUncertainty_ZeroSlope(t *testing.T) {
	_, err := CombineUncertainty(0, 1e-6, 550, 0.5)
	require.ErrorIs(t, err, entity.ErrDegenerateInput)
}

func TestCombineUncertainty_ZeroFringeRange(t *testing.T) {
	_, err := CombineUncertainty(3.16e-4, 1e-6, 0, 0.5)
	require.ErrorIs(t, err, entity.ErrDegenerateInput)
}
