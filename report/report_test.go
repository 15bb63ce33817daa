package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"michelson/analysis"
	"michelson/entity"
)

func testResult() analysis.Result {
	return analysis.Result{
		WavelengthNM:            629.80,
		WavelengthUncertaintyNM: 1.95,
		TotalRelUncertaintyPct:  0.32,
		RSquared:                0.999904,
		Slope:                   3.1490209790e-4,
		SlopeStdErr:             9.77e-7,
		Intercept:               54.411477,
	}
}

func testSeries(t *testing.T) entity.Series {
	t.Helper()
	s, err := entity.NewSeries(
		[]float64{0, 50, 100},
		[]float64{54.410, 54.4275, 54.4435},
	)
	require.NoError(t, err)
	return s
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, testResult(), testSeries(t)))

	html := buf.String()
	assert.Contains(t, html, "Michelson interferometer wavelength analysis")
	assert.Contains(t, html, "Wavelength = 629.80 ± 1.95 nm")
	assert.Contains(t, html, "Measured data")
	assert.Contains(t, html, "Linear fit")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testResult(), testSeries(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"fringe_count", "displacement_mm", "fit_mm"}, records[0])
	assert.Equal(t, "50", records[2][0])
	assert.Equal(t, "54.4275", records[2][1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testResult()))

	var decoded analysis.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testResult(), decoded)
}

func TestSummary(t *testing.T) {
	text := Summary(testResult())

	assert.Contains(t, text, "Wavelength = 629.80 ± 1.95 nm")
	assert.Contains(t, text, "Relative uncertainty = 0.32%")
	assert.Contains(t, text, "R² = 0.999904")
}

func TestWriteForm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteForm(&buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Michelson interferometer data analysis")
	assert.Contains(t, html, "correct-backlash")
	assert.Contains(t, html, "static demo with no backend")
}
