package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottodish/internal/display"
	"github.com/hammamikhairi/ottodish/internal/domain"
	"github.com/hammamikhairi/ottodish/internal/engine"
)

func (c *cli) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Parse a description and check the record against the schema",
		Long: `Parses one description and reports every schema violation: required
fields left blank and values over their length limit. Exits with status 2
when the record is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := engine.New(c.extractor, c.store, c.log, engine.WithValidation(true))
			res, err := c.processInput(cmd, eng, args)
			if err != nil {
				return err
			}
			if res.Valid() {
				fmt.Fprintln(cmd.OutOrStdout(), display.BannerStyle.Render(res.Source+": ok"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.UrgentStyle.Render(fmt.Sprintf("%s: %d problem(s)", res.Source, len(res.Problems))))
			display.Problems(cmd.OutOrStdout(), res.Problems)
			return &exitError{code: exitInvalid, err: fmt.Errorf("%s: %w", res.Source, domain.ErrInvalidRecord)}
		},
	}
}
