package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/app"
)

func (c *CLI) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [initial-hex]",
		Short: "Pick a color interactively and see its closest token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial string
			if len(args) == 1 {
				initial = args[0]
			}
			metric, _ := cmd.Flags().GetString("metric")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Pick(cmd.Context(), app.PickOptions{
				Palette: palettePath(cmd),
				Metric:  metric,
				Initial: initial,
				Watch:   watch,
			})
		},
	}
	cmd.Flags().StringP("metric", "m", "rgb", "Distance metric: rgb or cielab")
	cmd.Flags().BoolP("watch", "w", false, "Reload the palette when its file changes")
	return cmd
}
