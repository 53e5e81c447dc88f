// Package app implements the application layer for swatch.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.trai.ch/swatch/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/render" //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/tui"    //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/swatch/internal/engine/matcher"
	"go.trai.ch/swatch/internal/ui/output"
	"go.trai.ch/swatch/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.PaletteLoader
	matcher    *matcher.Matcher
	logger     ports.Logger
	watcher    ports.Watcher
	out        io.Writer
	profile    func() termenv.Profile
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.PaletteLoader,
	m *matcher.Matcher,
	log ports.Logger,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		matcher: m,
		logger:  log,
		watcher: watcher,
		out:     os.Stdout,
		profile: output.ColorProfile,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets the writer results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithProfile sets the color profile selector used by the text renderer.
func (a *App) WithProfile(fn func() termenv.Profile) *App {
	a.profile = fn
	return a
}

// NearestOptions configuration for the Nearest method.
type NearestOptions struct {
	Palette string
	Metric  string
	Format  string
}

// Nearest resolves every input color to its closest palette token and prints the result.
// Malformed inputs are reported as unmatched rows and do not fail the lookup.
func (a *App) Nearest(ctx context.Context, inputs []string, opts NearestOptions) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputColors
	}

	palette, err := a.loadPalette(opts.Palette)
	if err != nil {
		return err
	}

	m, err := a.matcherFor(opts.Metric)
	if err != nil {
		return err
	}

	renderer, err := render.New(opts.Format, a.profile())
	if err != nil {
		return err
	}

	matches, err := m.MatchAll(ctx, inputs, palette)
	if err != nil {
		return zerr.Wrap(err, "lookup canceled")
	}

	for _, match := range matches {
		if !match.Found {
			a.logger.Warn(fmt.Sprintf("%q is not a six digit hex color", match.Input))
		}
	}

	return renderer.RenderMatches(a.out, matches)
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Palette string
	Format  string
}

// List prints every token of the palette in palette order.
func (a *App) List(_ context.Context, opts ListOptions) error {
	palette, err := a.loadPalette(opts.Palette)
	if err != nil {
		return err
	}

	renderer, err := render.New(opts.Format, a.profile())
	if err != nil {
		return err
	}

	return renderer.RenderPalette(a.out, palette)
}

// Validate loads the palette at path and prints a summary with its fingerprint.
func (a *App) Validate(_ context.Context, path string) error {
	palette, err := a.loadPalette(path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = config.DefaultSource
	}

	_, err = fmt.Fprintf(a.out, "%s %s: palette %q, %d tokens, fingerprint %s\n",
		style.Check, source, palette.Name(), palette.Len(), config.Fingerprint(palette))
	if err != nil {
		return zerr.Wrap(err, "failed to write validation result")
	}
	return nil
}

// PickOptions configuration for the Pick method.
type PickOptions struct {
	Palette string
	Metric  string
	Initial string
	Watch   bool
}

// Pick runs the interactive picker. When it exits with a valid color, the
// final match is printed.
func (a *App) Pick(ctx context.Context, opts PickOptions) error {
	palette, err := a.loadPalette(opts.Palette)
	if err != nil {
		return err
	}

	m, err := a.matcherFor(opts.Metric)
	if err != nil {
		return err
	}

	model := tui.NewModel(palette, m.Distance()).WithInitial(opts.Initial)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Watch {
		if opts.Palette == "" {
			a.logger.Warn("the built-in palette cannot be watched, ignoring --watch")
		} else {
			changes, err := a.watcher.Watch(ctx, opts.Palette)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", opts.Palette)
			}
			path := opts.Palette
			a.logger.Info("watching " + path + " for changes")
			model = model.WithReload(changes, func() (*domain.Palette, error) {
				return a.loader.Load(path)
			})
		}
	}

	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	final, err := tea.NewProgram(model, teaOpts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return zerr.Wrap(err, "picker failed")
	}

	picked, ok := final.(tui.Model)
	if !ok || !picked.Match.Found {
		return nil
	}

	renderer, err := render.New(render.FormatText, a.profile())
	if err != nil {
		return err
	}
	return renderer.RenderMatches(a.out, []domain.Match{picked.Match})
}

func (a *App) loadPalette(path string) (*domain.Palette, error) {
	palette, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load palette")
	}
	return palette, nil
}

func (a *App) matcherFor(name string) (*matcher.Matcher, error) {
	metric, err := domain.ParseMetric(name)
	if err != nil {
		return nil, err
	}
	if metric == a.matcher.Metric() {
		return a.matcher, nil
	}
	return a.matcher.WithMetric(metric)
}
