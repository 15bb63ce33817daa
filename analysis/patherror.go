package analysis

import (
	"math"

	"michelson/entity"
)

// CorrectPathError fits the series after compensating for a viewing axis
// offset from the optical axis. The offset foreshortens every apparent
// displacement by cos θ, θ = arctan(deviationCM / pathLengthCM), so the
// displacements are divided by cos θ before fitting. A zero deviation
// defers to FitLine on the untouched series.
func CorrectPathError(series entity.Series, deviationCM, pathLengthCM float64) (Fit, error) {
	if deviationCM == 0 {
		return FitLine(series)
	}

	cosTheta := math.Cos(math.Atan(deviationCM / pathLengthCM))
	corrected := series.Displacements()
	for i := range corrected {
		corrected[i] /= cosTheta
	}
	scaled, err := series.WithDisplacements(corrected)
	if err != nil {
		panic(err)
	}
	return FitLine(scaled)
}
