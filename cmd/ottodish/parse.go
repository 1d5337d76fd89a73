package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottodish/internal/domain"
	"github.com/hammamikhairi/ottodish/internal/engine"
)

func (c *cli) parseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse one description and print the record",
		Long: `Reads a single description from a file, or from stdin when the argument
is "-" or omitted, and prints the extracted record.

Missing sections never fail: they leave empty fields. The only parse error
is input that cannot be read as text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := c.renderer()
			if err != nil {
				return err
			}
			res, err := c.processInput(cmd, c.engine(), args)
			if err != nil {
				return err
			}
			if err := rs.result(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, false); err != nil {
				return err
			}
			if c.cfg.Output.Strict && !res.Valid() {
				return &exitError{code: exitInvalid, err: fmt.Errorf("%s: %w", res.Source, domain.ErrInvalidRecord)}
			}
			return nil
		},
	}
	addOutputFlags(cmd)
	return cmd
}

// processInput runs the engine over a file argument or stdin.
func (c *cli) processInput(cmd *cobra.Command, eng *engine.Engine, args []string) (*domain.Result, error) {
	if len(args) == 0 || args[0] == "-" {
		return eng.ProcessReader("-", cmd.InOrStdin())
	}
	return eng.ProcessFile(args[0])
}
