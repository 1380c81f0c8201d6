// cmd/root.go
package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
)

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:          "jlpt",
		Short:        "JLPT vocabulary flashcard quiz",
		Version:      config.AppVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(configDir); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := newLogger(config.Cfg.Log.Level, cmd.ErrOrStderr())
			slog.SetDefault(logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(middleware.WithLogger(ctx, logger))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")

	root.AddCommand(
		newServeCmd(),
		newFetchCmd(),
		newSeedCmd(),
		newLevelsCmd(),
		newQuizCmd(),
	)
	return root
}
