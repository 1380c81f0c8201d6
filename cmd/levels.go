// cmd/levels.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels that have a vocabulary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := repository.NewFileVocabRepository(config.Cfg.Data.Dir).ListLevels(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(levels) == 0 {
				fmt.Fprintf(out, "No vocabulary files in %s\n", config.Cfg.Data.Dir)
				return nil
			}
			for _, level := range levels {
				fmt.Fprintln(out, level)
			}
			return nil
		},
	}
}
