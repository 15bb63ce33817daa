package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"michelson/analysis"
	"michelson/entity"
)

// WriteCSV exports the corrected series with the fitted displacement of
// each point.
func WriteCSV(w io.Writer, result analysis.Result, series entity.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fringe_count", "displacement_mm", "fit_mm"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := 0; i < series.Len(); i++ {
		fit := result.Slope*series.Fringe(i) + result.Intercept
		record := []string{
			strconv.FormatFloat(series.Fringe(i), 'g', -1, 64),
			strconv.FormatFloat(series.Displacement(i), 'g', -1, 64),
			strconv.FormatFloat(fit, 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteJSON dumps the analysis result as indented JSON.
func WriteJSON(w io.Writer, result analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// Summary formats the result for console output.
func Summary(result analysis.Result) string {
	return fmt.Sprintf(
		"Slope = %.8f ± %.8f mm/fringe\nWavelength = %.2f ± %.2f nm\nRelative uncertainty = %.2f%%\nR² = %.6f",
		result.Slope, result.SlopeStdErr,
		result.WavelengthNM, result.WavelengthUncertaintyNM,
		result.TotalRelUncertaintyPct,
		result.RSquared,
	)
}
