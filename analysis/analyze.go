// Package analysis computes the wavelength of a coherent source from
// Michelson-interferometer fringe-count/displacement measurements: a linear
// fit of displacement against fringe count, two systematic-error
// corrections (screw backlash, off-axis viewing) and the combined relative
// uncertainty of the result.
package analysis

import (
	"michelson/entity"
	"michelson/entity/parameters"
)

// Result is the complete outcome of one analysis run. It is plain data;
// rendering is up to the caller.
type Result struct {
	WavelengthNM            float64 `json:"wavelength_nm"`
	WavelengthUncertaintyNM float64 `json:"wavelength_uncertainty_nm"`
	TotalRelUncertaintyPct  float64 `json:"total_relative_uncertainty_pct"`
	RSquared                float64 `json:"r_squared"`
	Slope                   float64 `json:"slope_mm_per_fringe"`
	SlopeStdErr             float64 `json:"slope_std_err"`
	Intercept               float64 `json:"intercept_mm"`
}

// Analyze runs the full pipeline on a measurement series: backlash
// correction (when enabled), path-error correction (when a deviation is
// configured), the least-squares fit and the uncertainty combination. It
// returns the result together with the corrected series the fit was
// derived from, for plotting. No I/O happens here.
func Analyze(series entity.Series, params *parameters.Parameters) (Result, entity.Series, error) {
	if params == nil {
		params = parameters.Default()
	}

	if params.CorrectBacklash {
		series = CorrectBacklash(series, params.BacklashThresholdRatio)
	}

	fit, err := CorrectPathError(series, params.DeviationCM, params.PathLengthCM)
	if err != nil {
		return Result{}, entity.Series{}, err
	}

	totalPct, err := CombineUncertainty(
		fit.Slope, fit.SlopeStdErr,
		series.FringeRange(), params.FringeReadingUncertainty,
	)
	if err != nil {
		return Result{}, entity.Series{}, err
	}

	return Result{
		WavelengthNM:            fit.WavelengthNM,
		WavelengthUncertaintyNM: fit.WavelengthUncertaintyNM,
		TotalRelUncertaintyPct:  totalPct,
		RSquared:                fit.RSquared,
		Slope:                   fit.Slope,
		SlopeStdErr:             fit.SlopeStdErr,
		Intercept:               fit.Intercept,
	}, series, nil
}
