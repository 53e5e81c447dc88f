// Package tui provides the interactive color picker.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"go.trai.ch/swatch/internal/core/domain"
)

// inputWidth fits "#rrggbb" plus room to show over-long input scrolling.
const inputWidth = 12

// NewModel creates a picker over palette that measures with dist.
func NewModel(palette *domain.Palette, dist domain.DistanceFunc) Model {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "#rrggbb"
	in.Width = inputWidth
	in.Focus()

	m := Model{
		Input:   in,
		Palette: palette,
		Cursor:  -1,
		dist:    dist,
	}
	m.recompute()
	return m
}

// WithInitial preloads the picked color. The value is kept as given so that
// malformed input stays visible and unmatched.
func (m Model) WithInitial(hex string) Model {
	m.Input.SetValue(hex)
	m.Input.CursorEnd()
	m.recompute()
	return m
}

// WithReload makes the model reload its palette each time changes receives a value.
func (m Model) WithReload(changes <-chan struct{}, reload func() (*domain.Palette, error)) Model {
	m.changes = changes
	m.reload = reload
	return m
}
