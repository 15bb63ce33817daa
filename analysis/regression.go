package analysis

import (
	"fmt"
	"math"

	"michelson/entity"
)

// mm of mirror travel per counted fringe is half a wavelength, so the
// fitted slope converts to nm as slope * 2 * 1e6.
const mmPerFringeToNM = 2 * 1e6

// Fit is the result of a least-squares fit of displacement against fringe
// count, with the slope already converted to a wavelength.
type Fit struct {
	// Slope of the fitted line, in mm per fringe.
	Slope float64
	// Intercept of the fitted line, in mm.
	Intercept float64
	// SlopeStdErr is the standard error of the slope, in mm per fringe.
	SlopeStdErr float64
	// RSquared is the squared Pearson correlation coefficient.
	RSquared float64
	// WavelengthNM is the wavelength implied by the slope, in nm.
	WavelengthNM float64
	// WavelengthUncertaintyNM is the standard uncertainty of the
	// wavelength, in nm.
	WavelengthUncertaintyNM float64
}

// FitLine computes the ordinary least-squares fit of displacement versus
// fringe count. It returns entity.ErrInsufficientData for fewer than two
// points and entity.ErrDegenerateInput when all fringe counts are equal.
func FitLine(series entity.Series) (Fit, error) {
	n := series.Len()
	if n < 2 {
		return Fit{}, fmt.Errorf("fit of %d points: %w", n, entity.ErrInsufficientData)
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += series.Fringe(i)
		sumY += series.Displacement(i)
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var ssxx, ssyy, ssxy float64
	for i := 0; i < n; i++ {
		dx := series.Fringe(i) - meanX
		dy := series.Displacement(i) - meanY
		ssxx += dx * dx
		ssyy += dy * dy
		ssxy += dx * dy
	}
	if ssxx == 0 {
		return Fit{}, fmt.Errorf("zero-variance fringe counts: %w", entity.ErrDegenerateInput)
	}

	slope := ssxy / ssxx
	intercept := meanY - slope*meanX

	// Flat displacement data carries no correlation.
	rSquared := 0.0
	if ssyy > 0 {
		r := ssxy / math.Sqrt(ssxx*ssyy)
		rSquared = r * r
	}

	// Unbiased residual variance needs n > 2; two points fit exactly.
	stdErr := 0.0
	if n > 2 {
		var rss float64
		for i := 0; i < n; i++ {
			resid := series.Displacement(i) - (slope*series.Fringe(i) + intercept)
			rss += resid * resid
		}
		stdErr = math.Sqrt(rss / float64(n-2) / ssxx)
	}

	return Fit{
		Slope:                   slope,
		Intercept:               intercept,
		SlopeStdErr:             stdErr,
		RSquared:                rSquared,
		WavelengthNM:            slope * mmPerFringeToNM,
		WavelengthUncertaintyNM: stdErr * mmPerFringeToNM,
	}, nil
}
