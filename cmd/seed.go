// cmd/seed.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/config"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the bundled N5 sample vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, count, err := seed.WriteSample(cmd.Context(), config.Cfg.Data.Dir, force)
			if errors.Is(err, seed.ErrAlreadyExists) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", path)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d words\n", path, count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
