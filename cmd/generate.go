package cmd

import (
	"context"
	"fmt"
	"game-set-validator/core/config"
	"game-set-validator/core/dataset"
	"game-set-validator/core/generator"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"path/filepath"
)

var (
	configPath string
	outputPath string

	GenerateCmd = &cobra.Command{
		Use:     "generate",
		Short:   "Generate an optimized games CSV from a config",
		Long:    "Generate games whose numbers stay in range and never repeat a 3-number combination, writing them to a CSV file",
		Example: "./binary generate --config ./config.toml --output ./optimized_games.csv",
		PreRunE: func(cmd *cobra.Command, args []string) error { // pre run to validate flags
			if configPath == "" || outputPath == "" {
				return fmt.Errorf("config and output path must be specified. "+
					"got config: %s, output: %s", configPath, outputPath)
			}

			slog.Info("Finish to validate flags:",
				slog.String("ConfigPath", configPath),
				slog.String("OutputPath", outputPath),
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			gen, err := generator.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create generator: %w", err)
			}

			writer, err := dataset.NewWriter(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create games writer: %w", err)
			}

			ctx := context.Background()
			gameC := make(chan dataset.Game, 1)
			g, gCtx := errgroup.WithContext(ctx)

			go gen.ProgressWatch(gCtx)

			g.Go(func() error { return gen.Run(gCtx, gameC) })
			g.Go(func() error { return writer.Write(gCtx, gameC) })
			if err = g.Wait(); err != nil {
				return fmt.Errorf("failed to generate games: %w", err)
			}

			if err = gen.SaveSets(filepath.Dir(writer.OutputPath)); err != nil {
				return err
			}

			slog.Info("Finish to generate games:",
				slog.String("OutputPath", writer.OutputPath),
				slog.Uint64("GameCount", writer.ItemCount),
			)
			return nil
		},
	}
)

func init() {
	GenerateCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "the TOML config file to generate from")
	GenerateCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "optimized_games.csv", "the games CSV file to write")
}
