package main

import (
	"fmt"
	"strings"

	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/output"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example loan inputs file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("output")
		parser := config.NewInputParser()
		if err := parser.SaveToFile(parser.CreateExampleInputs(), path); err != nil {
			return fmt.Errorf("failed to write example: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example inputs written to %s\n", path)
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and their aliases",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		fmt.Fprintln(out, "Use 'all' with analyze to write console-verbose, detailed-csv and html reports.")
	},
}

func init() {
	exampleCmd.Flags().StringP("output", "o", "example_inputs.yaml", "file to write (.json writes JSON)")
}
