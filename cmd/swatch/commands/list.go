package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tokens of the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.List(cmd.Context(), app.ListOptions{
				Palette: palettePath(cmd),
				Format:  format,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	return cmd
}
