package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"michelson/analysis"
	"michelson/entity"
	"michelson/entity/format"
	"michelson/entity/mode"
	"michelson/entity/parameters"
	"michelson/input"
	"michelson/report"
)

// App runs one analysis end to end: read measurements, analyze, render.
type App struct {
	Input  string // path to measurement data, "-" for stdin
	Output string
	Mode   mode.Mode
	Format format.Format
	Params *parameters.Parameters
}

func New(inputPath, outputPath string, m mode.Mode, f format.Format, params *parameters.Parameters) *App {
	return &App{
		Input:  inputPath,
		Output: outputPath,
		Mode:   m,
		Format: f,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	if a.Params == nil {
		a.Params = parameters.Default()
	}
	log.WithFields(log.Fields{
		"input":           a.Input,
		"output":          a.Output,
		"deviation":       a.Params.DeviationCM,
		"pathLength":      a.Params.PathLengthCM,
		"correctBacklash": a.Params.CorrectBacklash,
	}).Debug("App started")

	series, err := a.readSeries()
	if err != nil {
		return fmt.Errorf("failed to read measurements: %w", err)
	}
	log.WithField("points", series.Len()).Info("Measurements loaded")

	result, corrected, err := analysis.Analyze(series, a.Params)
	if err != nil {
		return fmt.Errorf("failed to analyze measurements: %w", err)
	}
	log.WithFields(log.Fields{
		"wavelength":  result.WavelengthNM,
		"uncertainty": result.WavelengthUncertaintyNM,
		"rSquared":    result.RSquared,
	}).Info("Analysis complete")

	fmt.Println(report.Summary(result))

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := a.render(f, result, corrected); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"time":   time.Since(renderTime),
		"output": a.Output,
	}).Info("Report rendered and saved")

	return nil
}

func (a *App) readSeries() (entity.Series, error) {
	var r io.Reader = os.Stdin
	if a.Input != "-" {
		f, err := os.Open(a.Input)
		if err != nil {
			return entity.Series{}, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if a.Mode == mode.Columns {
		return input.ParseColumns(r)
	}
	return input.ParsePairs(r)
}

func (a *App) render(w io.Writer, result analysis.Result, series entity.Series) error {
	switch a.Format {
	case format.Csv:
		return report.WriteCSV(w, result, series)
	case format.JSON:
		return report.WriteJSON(w, result)
	default:
		return report.RenderHTML(w, result, series)
	}
}
