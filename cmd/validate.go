package cmd

import (
	"fmt"
	"game-set-validator/core/dataset"
	"game-set-validator/core/validator"
	"github.com/spf13/cobra"
	"log/slog"
	"path/filepath"
)

var (
	inputPath    string
	reportPath   string
	overlapLimit int
	minNumber    int

	ValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate a games CSV file",
		Long: "Check that no two games in the file share too many numbers and that " +
			"every number clears the configured minimum",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("input file must be specified")
			}

			if overlapLimit < 1 {
				return fmt.Errorf("overlap limit must be greater than 0. got %d", overlapLimit)
			}

			slog.Info("Finish to validate flags:",
				slog.String("InputPath", inputPath),
				slog.Int("OverlapLimit", overlapLimit),
				slog.Int("MinNumber", minNumber),
				slog.String("ReportPath", reportPath),
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(inputPath)
			if err != nil {
				return err
			}

			ds, err := dataset.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load games: %w", err)
			}

			reporter, err := validator.NewReporter(cmd.OutOrStdout(), reportPath)
			if err != nil {
				return fmt.Errorf("failed to create reporter: %w", err)
			}
			defer reporter.Flush()

			if err = validator.CheckMaxPairwiseIntersection(ds, overlapLimit, reporter); err != nil {
				return err
			}

			if err = validator.CheckMinimumValue(ds, minNumber, reporter); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tested games are OK! Finished %s successfully\n", path)
			return nil
		},
	}
)

func init() {
	ValidateCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "optimized_games.csv", "the games CSV file to validate")
	ValidateCmd.PersistentFlags().IntVarP(&overlapLimit, "limit", "l", 3, "two games sharing at least this many numbers fail the check")
	ValidateCmd.PersistentFlags().IntVarP(&minNumber, "min", "m", 31, "numbers at or below this value fail the check")
	ValidateCmd.PersistentFlags().StringVarP(&reportPath, "report", "r", "", "optional file to write the failure report to")
}
