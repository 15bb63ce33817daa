package analysis

import (
	"fmt"
	"math"

	"michelson/entity"
)

// CombineUncertainty merges the statistical uncertainty of the fitted slope
// with the fringe-count reading granularity into one relative figure, in
// percent. The two sources are independent and add in quadrature:
//
//	100 * sqrt((stdErr/slope)² + (reading/fringeRange)²)
//
// A zero slope or zero fringe range leaves a term undefined and returns
// entity.ErrDegenerateInput.
func CombineUncertainty(slope, slopeStdErr, fringeRange, readingUncertainty float64) (float64, error) {
	if slope == 0 {
		return 0, fmt.Errorf("zero slope: %w", entity.ErrDegenerateInput)
	}
	if fringeRange == 0 {
		return 0, fmt.Errorf("zero fringe range: %w", entity.ErrDegenerateInput)
	}

	slopeRel := slopeStdErr / slope
	readingRel := readingUncertainty / fringeRange
	return 100 * math.Sqrt(slopeRel*slopeRel+readingRel*readingRel), nil
}
