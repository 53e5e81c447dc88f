package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/app"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports/mocks"
	"go.trai.ch/swatch/internal/engine/matcher"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader  *mocks.MockPaletteLoader
	logger  *mocks.MockLogger
	watcher *mocks.MockWatcher
	out     *bytes.Buffer
	app     *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	m, err := matcher.New(domain.DefaultMetric)
	require.NoError(t, err)

	f := &fixture{
		loader:  mocks.NewMockPaletteLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		out:     &bytes.Buffer{},
	}
	f.app = app.New(f.loader, m, f.logger, f.watcher).
		WithOutput(f.out).
		WithProfile(func() termenv.Profile { return termenv.Ascii }).
		WithTeaOptions(
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
			tea.WithoutRenderer(),
		)
	return f
}

func monoPalette(t *testing.T) *domain.Palette {
	t.Helper()
	p, err := domain.NewPalette("mono", []domain.ColorToken{
		{Name: "black", Hex: "#000000", Usage: "Text"},
		{Name: "white", Hex: "#FFFFFF", Usage: "Background"},
	})
	require.NoError(t, err)
	return p
}

func TestApp_Nearest(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("brand.yaml").Return(monoPalette(t), nil)

	err := f.app.Nearest(context.Background(), []string{"#010101", "#FEFEFE"}, app.NearestOptions{Palette: "brand.yaml"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "black")
	assert.Contains(t, lines[1], "white")
}

func TestApp_Nearest_MalformedInputWarns(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)
	f.logger.EXPECT().Warn(`"#abc" is not a six digit hex color`).Times(1)

	err := f.app.Nearest(context.Background(), []string{"#abc", "#808080"}, app.NearestOptions{})
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "no match")
	assert.Contains(t, out, "white")
}

func TestApp_Nearest_JSONWithCIELab(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)

	err := f.app.Nearest(context.Background(), []string{"#202020"}, app.NearestOptions{
		Metric: "cielab",
		Format: "json",
	})
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "#202020", rows[0]["input"])
	assert.Equal(t, true, rows[0]["found"])
}

func TestApp_Nearest_Errors(t *testing.T) {
	loadErr := errors.New("disk on fire")

	tests := []struct {
		name      string
		inputs    []string
		opts      app.NearestOptions
		setup     func(f *fixture)
		errSubstr string
	}{
		{
			name:      "no inputs",
			errSubstr: domain.ErrNoInputColors.Error(),
			setup:     func(*fixture) {},
		},
		{
			name:      "palette load failure",
			inputs:    []string{"#000000"},
			errSubstr: loadErr.Error(),
			setup: func(f *fixture) {
				f.loader.EXPECT().Load("").Return(nil, loadErr)
			},
		},
		{
			name:      "unknown metric",
			inputs:    []string{"#000000"},
			opts:      app.NearestOptions{Metric: "hsv"},
			errSubstr: domain.ErrUnknownMetric.Error(),
			setup: func(f *fixture) {
				f.loader.EXPECT().Load("").Return(monoPalette(t), nil)
			},
		},
		{
			name:      "unknown format",
			inputs:    []string{"#000000"},
			opts:      app.NearestOptions{Format: "xml"},
			errSubstr: domain.ErrUnknownFormat.Error(),
			setup: func(f *fixture) {
				f.loader.EXPECT().Load("").Return(monoPalette(t), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.app.Nearest(context.Background(), tt.inputs, tt.opts)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errSubstr)
			assert.Empty(t, f.out.String())
		})
	}
}

func TestApp_Nearest_Canceled(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app.Nearest(ctx, []string{"#000000"}, app.NearestOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_List(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)

	require.NoError(t, f.app.List(context.Background(), app.ListOptions{}))

	out := f.out.String()
	assert.True(t, strings.HasPrefix(out, "mono (2 tokens)\n"))
	assert.Less(t, strings.Index(out, "black"), strings.Index(out, "white"))
}

func TestApp_Validate(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("brand.yaml").Return(monoPalette(t), nil)

	require.NoError(t, f.app.Validate(context.Background(), "brand.yaml"))

	out := f.out.String()
	assert.Contains(t, out, `brand.yaml: palette "mono", 2 tokens, fingerprint `)
}

func TestApp_Validate_BuiltIn(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)

	require.NoError(t, f.app.Validate(context.Background(), ""))
	assert.Contains(t, f.out.String(), "<built-in>")
}

func TestApp_Validate_Invalid(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("bad.yaml").Return(nil, domain.ErrEmptyPalette)

	err := f.app.Validate(context.Background(), "bad.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEmptyPalette.Error())
}

// quitInput makes the picker exit on its first key press.
func quitInput() tea.ProgramOption {
	return tea.WithInput(strings.NewReader("\x03"))
}

func TestApp_Pick_PrintsFinalMatch(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)
	f.app.WithTeaOptions(quitInput())

	err := f.app.Pick(context.Background(), app.PickOptions{Initial: "#f0f0f0"})
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "white")
}

func TestApp_Pick_NoOutputWithoutColor(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)
	f.app.WithTeaOptions(quitInput())

	require.NoError(t, f.app.Pick(context.Background(), app.PickOptions{}))
	assert.Empty(t, f.out.String())
}

func TestApp_Pick_WatchBuiltInWarns(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(monoPalette(t), nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)
	f.app.WithTeaOptions(quitInput())

	require.NoError(t, f.app.Pick(context.Background(), app.PickOptions{Watch: true}))
}

func TestApp_Pick_WatchesPaletteFile(t *testing.T) {
	f := newFixture(t)
	changes := make(chan struct{})
	f.loader.EXPECT().Load("brand.yaml").Return(monoPalette(t), nil)
	f.watcher.EXPECT().Watch(gomock.Any(), "brand.yaml").Return((<-chan struct{})(changes), nil)
	f.logger.EXPECT().Info("watching brand.yaml for changes").Times(1)
	f.app.WithTeaOptions(quitInput())

	require.NoError(t, f.app.Pick(context.Background(), app.PickOptions{Palette: "brand.yaml", Watch: true}))
}

func TestApp_Pick_WatchFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("brand.yaml").Return(monoPalette(t), nil)
	f.watcher.EXPECT().Watch(gomock.Any(), "brand.yaml").Return(nil, errors.New("too many files"))

	err := f.app.Pick(context.Background(), app.PickOptions{Palette: "brand.yaml", Watch: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	assert.ErrorContains(t, err, "too many files")
}
