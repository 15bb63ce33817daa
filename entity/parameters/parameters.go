// Package parameters holds the tunable constants of a wavelength analysis
// run. The defaults come from the calibration of the teaching instrument:
// half a fringe of reading uncertainty, a 5% backlash detection margin and
// 41 cm from the beam splitter to the observation screen.
package parameters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFringeReadingUncertainty = 0.5
	DefaultBacklashThresholdRatio   = 1.05
	DefaultPathLengthCM             = 41.0
)

type Parameters struct {
	// DeviationCM is the offset of the viewing axis from the optical
	// axis at the observation screen, in cm. 0 disables the path-error
	// correction.
	DeviationCM float64 `yaml:"deviation_cm"`

	// PathLengthCM is the distance from the beam splitter to the
	// observation screen, in cm.
	PathLengthCM float64 `yaml:"path_length_cm"`

	// CorrectBacklash enables the screw dead-zone correction of the
	// first few measurement points.
	CorrectBacklash bool `yaml:"correct_backlash"`

	// FringeReadingUncertainty is the granularity of a fringe-count
	// reading, in fringes.
	FringeReadingUncertainty float64 `yaml:"fringe_reading_uncertainty"`

	// BacklashThresholdRatio is the factor by which an early spacing
	// must exceed the stable-region average to count as backlash.
	BacklashThresholdRatio float64 `yaml:"backlash_threshold_ratio"`
}

func Default() *Parameters {
	return &Parameters{
		DeviationCM:              0,
		PathLengthCM:             DefaultPathLengthCM,
		CorrectBacklash:          true,
		FringeReadingUncertainty: DefaultFringeReadingUncertainty,
		BacklashThresholdRatio:   DefaultBacklashThresholdRatio,
	}
}

// Load reads parameters from a YAML file. Fields absent from the file keep
// their defaults.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file: %w", err)
	}
	params := Default()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("failed to parse parameters file: %w", err)
	}
	return params, nil
}
