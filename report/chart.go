// Package report renders an analysis result for the user: an HTML page
// with the measured points and fitted line, a CSV export of the corrected
// series, a JSON dump of the numbers, and the static demo web form.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"michelson/analysis"
	"michelson/entity"
)

// RenderHTML writes an HTML report: the measured points as a scatter
// overlaid with the fitted line, and the formatted result fields in the
// chart title block.
func RenderHTML(w io.Writer, result analysis.Result, series entity.Series) error {
	chart := createChart(result, series)
	if err := chart.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func createChart(result analysis.Result, series entity.Series) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Michelson interferometer wavelength analysis",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Michelson interferometer wavelength analysis",
			Subtitle: resultText(result),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:       opts.Bool(true),
					YAxisIndex: "default",
					Title: map[string]string{
						"zoom": "area zooming",
						"back": "restore area zooming",
					},
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Fringe count",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Mirror displacement, mm",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	line.SetXAxis(series.Fringes())

	fitData := make([]opts.LineData, series.Len())
	for i := 0; i < series.Len(); i++ {
		fitData[i] = opts.LineData{Value: result.Slope*series.Fringe(i) + result.Intercept}
	}
	line.AddSeries("Linear fit", fitData)

	scatter := charts.NewScatter()
	measured := make([]opts.ScatterData, series.Len())
	for i := 0; i < series.Len(); i++ {
		measured[i] = opts.ScatterData{Value: series.Displacement(i)}
	}
	scatter.AddSeries("Measured data", measured)
	line.Overlap(scatter)

	return line
}

func resultText(result analysis.Result) string {
	return fmt.Sprintf(
		"Wavelength = %.2f ± %.2f nm\nRelative uncertainty = %.2f%%\nSlope = %.8f ± %.8f mm/fringe\nR² = %.6f",
		result.WavelengthNM, result.WavelengthUncertaintyNM,
		result.TotalRelUncertaintyPct,
		result.Slope, result.SlopeStdErr,
		result.RSquared,
	)
}
