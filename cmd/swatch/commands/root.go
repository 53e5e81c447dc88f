// Package commands implements the CLI commands for swatch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/swatch/internal/adapters/config"
	"go.trai.ch/swatch/internal/app"
	"go.trai.ch/swatch/internal/build"
)

// CLI represents the command line interface for swatch.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Nearest(ctx context.Context, inputs []string, opts app.NearestOptions) error
	List(ctx context.Context, opts app.ListOptions) error
	Validate(ctx context.Context, path string) error
	Pick(ctx context.Context, opts app.PickOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Match colors to the nearest design token",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("palette", "p", "",
		"Palette file to match against (default: $"+config.EnvPalette+" or the built-in palette)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newNearestCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newPickCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the stream colors are read from when none are given as arguments.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// palettePath resolves the palette flag against the environment.
func palettePath(cmd *cobra.Command) string {
	flag, _ := cmd.Flags().GetString("palette")
	return config.ResolvePath(flag)
}
