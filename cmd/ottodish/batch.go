package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottodish/internal/domain"
	"github.com/hammamikhairi/ottodish/internal/engine"
)

func (c *cli) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <glob>...",
		Short: "Parse many descriptions concurrently",
		Long: `Expands the glob patterns, parses every matching file with a bounded
worker pool and prints the records in path order. Files that cannot be
read as text are reported and do not stop the rest of the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := c.renderer()
			if err != nil {
				return err
			}
			paths, err := engine.Expand(args)
			if err != nil {
				return err
			}

			results, batchErr := c.engine().Batch(cmd.Context(), paths, c.cfg.Batch.Workers)

			invalid := 0
			for _, res := range results {
				if err := rs.result(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, len(paths) > 1); err != nil {
					return err
				}
				if !res.Valid() {
					invalid++
				}
			}
			c.log.Info("batch: %d parsed, %d failed, %d invalid", len(results), len(paths)-len(results), invalid)

			if batchErr != nil {
				return batchErr
			}
			if c.cfg.Output.Strict && invalid > 0 {
				return &exitError{code: exitInvalid, err: fmt.Errorf("%d of %d record(s): %w", invalid, len(results), domain.ErrInvalidRecord)}
			}
			return nil
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().IntP("workers", "w", 0, "parallel workers (default from config, 4)")
	return cmd
}
