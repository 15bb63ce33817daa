package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"michelson/app"
	"michelson/entity/format"
	"michelson/entity/mode"
	"michelson/entity/parameters"
	"michelson/report"
)

var (
	flagInput      string
	flagOutput     string
	flagFormOutput string
	flagMode       string
	flagFormat     string
	flagParams     string
	flagDeviation  float64
	flagPathLength float64
	flagNoBacklash bool
	flagVerbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "michelson",
		Short: "Michelson interferometer wavelength analyzer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the laser wavelength from fringe/displacement data",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&flagInput, "input", "i", "-", `measurement data file ("-" for stdin)`)
	analyzeCmd.Flags().StringVarP(&flagOutput, "output", "o", "michelson_analysis.html", "report file")
	analyzeCmd.Flags().StringVarP(&flagMode, "mode", "m", "pairs", "input layout: pairs | columns")
	analyzeCmd.Flags().StringVarP(&flagFormat, "format", "f", "html", "report format: html | csv | json")
	analyzeCmd.Flags().StringVar(&flagParams, "params", "", "YAML file with analysis parameters")
	analyzeCmd.Flags().Float64Var(&flagDeviation, "deviation", 0, "fringe-center deviation from the optical axis, cm")
	analyzeCmd.Flags().Float64Var(&flagPathLength, "path-length", parameters.DefaultPathLengthCM, "distance to the observation screen, cm")
	analyzeCmd.Flags().BoolVar(&flagNoBacklash, "no-backlash", false, "disable the screw backlash correction")
	rootCmd.AddCommand(analyzeCmd)

	formCmd := &cobra.Command{
		Use:   "form",
		Short: "Write the static demo entry form",
		RunE:  runForm,
	}
	formCmd.Flags().StringVarP(&flagFormOutput, "output", "o", "michelson_analyzer_online.html", "form file")
	rootCmd.AddCommand(formCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	params := parameters.Default()
	if flagParams != "" {
		var err error
		params, err = parameters.Load(flagParams)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("deviation") {
		params.DeviationCM = flagDeviation
	}
	if cmd.Flags().Changed("path-length") {
		params.PathLengthCM = flagPathLength
	}
	if flagNoBacklash {
		params.CorrectBacklash = false
	}

	m, err := mode.UnmarshalText(flagMode)
	if err != nil {
		return err
	}
	f, err := format.UnmarshalText(flagFormat)
	if err != nil {
		return err
	}

	return app.New(flagInput, flagOutput, m, f, params).Run(cmd.Context())
}

func runForm(cmd *cobra.Command, args []string) error {
	f, err := os.Create(flagFormOutput)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := report.WriteForm(f); err != nil {
		return err
	}
	log.WithField("output", flagFormOutput).Info("Demo form saved")
	return nil
}
