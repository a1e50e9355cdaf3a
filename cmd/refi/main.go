package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "refi",
	Short: "Mortgage refinance calculator",
	Long: `Compares a mortgage staying as it is against a refinance, each with the
minimum and the planned payment: amortization schedules, remaining term,
total interest and how long the refinance takes to recoup its closing costs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(analyzeCmd, scheduleCmd, exampleCmd, serveCmd, formatsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
