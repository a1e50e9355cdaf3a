package main

import (
	"fmt"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/internal/logging"
	"github.com/refi/refi-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the refinance comparison for an inputs file",
	Example: `  refi analyze --input loan.yaml
  refi analyze --input loan.yaml --format html --output reports`,
	RunE: runAnalyze,
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the amortization schedule of one scenario",
	Example: `  refi schedule --input loan.yaml --scenario refiPlanned
  refi schedule --input loan.yaml --scenario currentMinimum --format csv`,
	RunE: runSchedule,
}

func init() {
	analyzeCmd.Flags().StringP("input", "i", "", "loan inputs file (YAML or JSON)")
	analyzeCmd.Flags().StringP("format", "f", "console", "output format (see 'refi formats'; 'all' writes several)")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to a timestamped file in this directory")
	_ = analyzeCmd.MarkFlagRequired("input")

	scheduleCmd.Flags().StringP("input", "i", "", "loan inputs file (YAML or JSON)")
	scheduleCmd.Flags().StringP("scenario", "s", string(domain.RefiPlanned), "currentMinimum, currentPlanned, refiMinimum or refiPlanned")
	scheduleCmd.Flags().StringP("format", "f", "console", "console or csv")
	_ = scheduleCmd.MarkFlagRequired("input")
}

// loadInputs reads the inputs file and logs anything that looks off
func loadInputs(path string, log *zap.Logger) (*domain.LoanInputs, error) {
	in, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range config.Warnings(*in) {
		log.Warn(w, zap.String("file", path))
	}
	return in, nil
}

func cliLogger() (*zap.Logger, error) {
	return logging.New(logLevel, logFormat)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	inputFile, _ := cmd.Flags().GetString("input")
	format, _ := cmd.Flags().GetString("format")
	outputDir, _ := cmd.Flags().GetString("output")

	log, err := cliLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	in, err := loadInputs(inputFile, log)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(log))
	a, err := engine.Analyze(cmd.Context(), *in)
	if err != nil {
		return err
	}

	if outputDir != "" || output.NormalizeFormatName(format) == "all" {
		if outputDir == "" {
			outputDir = "."
		}
		files, err := output.GenerateReport(a, format, outputDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}

	out, err := output.Render(a, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	inputFile, _ := cmd.Flags().GetString("input")
	scenario, _ := cmd.Flags().GetString("scenario")
	format, _ := cmd.Flags().GetString("format")

	log, err := cliLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	kind, err := domain.ParseScenarioKind(scenario)
	if err != nil {
		return err
	}
	in, err := loadInputs(inputFile, log)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(log))
	s, err := engine.Schedule(*in, kind)
	if err != nil {
		return err
	}
	out, err := output.FormatSchedule(kind, s, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
