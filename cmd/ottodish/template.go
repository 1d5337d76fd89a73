package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottodish/internal/template"
)

func (c *cli) templateCommand() *cobra.Command {
	var asYAML, list bool

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the producer prompt for the active vocabulary",
		Long: `Prints the prompt that tells an upstream producer how to lay out a
description so that ottodish can parse it. With --yaml the vocabulary
itself is printed instead, ready to be edited and passed back via --vocab.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			switch {
			case list:
				for _, name := range template.BuiltinNames() {
					fmt.Fprintln(out, name)
				}
			case asYAML:
				data, err := c.vocab.Marshal()
				if err != nil {
					return fmt.Errorf("template: %w", err)
				}
				out.Write(data)
			default:
				fmt.Fprint(out, template.Prompt(c.vocab))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the vocabulary as YAML")
	cmd.Flags().BoolVar(&list, "list", false, "list the built-in vocabularies")
	return cmd
}
