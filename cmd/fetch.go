// cmd/fetch.go
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/fetcher"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
)

func newFetchCmd() *cobra.Command {
	var (
		url   string
		level string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a JLPT word list and write it as a vocabulary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := middleware.GetLogger(ctx)
			cfg := config.Cfg
			if url == "" {
				url = cfg.Fetch.URL
			}
			if level == "" {
				level = cfg.Fetch.Level
			}

			f := fetcher.New(&http.Client{Timeout: 30 * time.Second})
			entries, err := f.Fetch(ctx, url)
			if err != nil {
				logger.Error("Failed to fetch word list", slog.String("url", url), slog.Any("error", err))
				return err
			}

			path, err := repository.WriteVocabFile(cfg.Data.Dir, level, entries)
			if err != nil {
				logger.Error("Failed to write vocabulary file", slog.String("level", level), slog.Any("error", err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully saved %d words to %s\n", len(entries), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "word list URL (defaults to fetch.url)")
	cmd.Flags().StringVar(&level, "level", "", "level to write (defaults to fetch.level)")
	return cmd
}
