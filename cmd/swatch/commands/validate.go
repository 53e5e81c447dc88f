package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a palette file and print its fingerprint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := palettePath(cmd)
			if len(args) == 1 {
				path = args[0]
			}
			return c.app.Validate(cmd.Context(), path)
		},
	}
}
