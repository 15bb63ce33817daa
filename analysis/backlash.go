package analysis

import "michelson/entity"

// backlashWindow is how many leading points the screw dead zone can affect.
const backlashWindow = 3

// CorrectBacklash compensates for the dead zone of the measuring screw,
// which inflates the first few inter-point spacings when the dial was not
// pre-rotated. The first spacings are compared against the average spacing
// of the stable region; if any exceeds it by more than thresholdRatio, the
// early points are rewritten onto the stable-region grid. The input series
// is never modified. Series shorter than four points are returned as is.
func CorrectBacklash(series entity.Series, thresholdRatio float64) entity.Series {
	n := series.Len()
	if n < 4 {
		return series
	}

	diffs := make([]float64, n-1)
	for i := range diffs {
		diffs[i] = series.Displacement(i+1) - series.Displacement(i)
	}

	// Average spacing of the stable region, past the points backlash can
	// reach. With few points, fall back to the overall average.
	var referenceAvg float64
	if len(diffs) > backlashWindow {
		for _, d := range diffs[backlashWindow:] {
			referenceAvg += d
		}
		referenceAvg /= float64(len(diffs) - backlashWindow)
	} else {
		for _, d := range diffs {
			referenceAvg += d
		}
		referenceAvg /= float64(len(diffs))
	}

	window := backlashWindow
	if window > len(diffs) {
		window = len(diffs)
	}
	needed := false
	for _, d := range diffs[:window] {
		if d > referenceAvg*thresholdRatio {
			needed = true
			break
		}
	}
	if !needed {
		return series
	}

	corrected := series.Displacements()
	for i := 1; i <= window; i++ {
		corrected[i] = series.Displacement(0) + float64(i)*referenceAvg
	}
	out, err := series.WithDisplacements(corrected)
	if err != nil {
		// Lengths match by construction.
		panic(err)
	}
	return out
}
