package commands

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newNearestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest [hex...]",
		Short: "Find the closest palette token for each color",
		Long: "Find the closest palette token for each color.\n\n" +
			"Colors are six digit hex values with or without a leading '#'. " +
			"Without arguments, whitespace separated colors are read from stdin.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				in := cmd.InOrStdin()
				if isTerminal(in) {
					// Nothing piped in; show usage instead of waiting on the terminal.
					_ = cmd.Help()
					return nil
				}
				var err error
				if inputs, err = readColors(in); err != nil {
					return err
				}
			}

			metric, _ := cmd.Flags().GetString("metric")
			format, _ := cmd.Flags().GetString("format")
			return c.app.Nearest(cmd.Context(), inputs, app.NearestOptions{
				Palette: palettePath(cmd),
				Metric:  metric,
				Format:  format,
			})
		},
	}
	cmd.Flags().StringP("metric", "m", "rgb", "Distance metric: rgb or cielab")
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	return cmd
}

func readColors(r io.Reader) ([]string, error) {
	var colors []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		colors = append(colors, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read colors from stdin")
	}
	return colors, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
