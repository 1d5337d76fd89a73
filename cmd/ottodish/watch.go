package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottodish/internal/watch"
)

func (c *cli) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Parse descriptions as they appear in a directory",
		Long: `Parses every matching file already in the directory, then re-parses
files as they are created or written. Files whose content has not changed
since the last parse are skipped. Stops on SIGINT or SIGTERM.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := c.renderer()
			if err != nil {
				return err
			}
			eng := c.engine()
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

			handle := func(_ context.Context, ev watch.Event) {
				if ev.Removed {
					eng.Forget(ev.Path)
					return
				}
				payload, err := os.ReadFile(ev.Path)
				if err != nil {
					// Removed again before we got to it.
					c.log.Debug("read %s: %v", ev.Path, err)
					return
				}
				res, changed, err := eng.ProcessIfChanged(ev.Path, payload)
				if err != nil {
					c.log.Error("%v", err)
					return
				}
				if !changed {
					return
				}
				if err := rs.result(out, errOut, res, true); err != nil {
					c.log.Error("%v", err)
				}
			}

			w, err := watch.New(args[0], handle, c.log,
				watch.WithPattern(c.cfg.Watch.Pattern),
				watch.WithDebounce(c.cfg.Watch.Debounce),
				watch.WithInitialScan(),
			)
			if err != nil {
				return err
			}
			return w.Run(cmd.Context())
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().String("pattern", "", "file name glob to watch (default *.txt)")
	cmd.Flags().Duration("debounce", 0, "quiet period before a changed file is parsed (default 200ms)")
	return cmd
}
