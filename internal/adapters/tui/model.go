package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/swatch/internal/core/domain"
)

// MsgPaletteChanged signals that the palette file was modified.
type MsgPaletteChanged struct{}

// MsgPaletteReloaded carries the result of re-reading the palette.
type MsgPaletteReloaded struct {
	Palette *domain.Palette
	Err     error
}

// Model is the picker state. The picked color lives in Input and the
// closest token is re-derived from scratch after every change.
type Model struct {
	Input   textinput.Model
	Palette *domain.Palette
	Match   domain.Match
	Cursor  int
	Width   int
	Err     error

	dist    domain.DistanceFunc
	changes <-chan struct{}
	reload  func() (*domain.Palette, error)
}

// Init starts the cursor blink and, when configured, waits for palette changes.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.moveCursor(-1)
			return m, nil
		case "down":
			m.moveCursor(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil

	case MsgPaletteChanged:
		return m, tea.Batch(m.reloadPalette(), m.waitForChange())

	case MsgPaletteReloaded:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Cursor = followCursor(m.Palette, msg.Palette, m.Cursor)
		m.Palette = msg.Palette
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.Input.Value()
	m.Input, cmd = m.Input.Update(msg)
	if m.Input.Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *Model) recompute() {
	if m.Palette == nil {
		m.Match = domain.Match{Input: m.Input.Value()}
		return
	}
	m.Match = m.Palette.Nearest(m.Input.Value(), m.dist)
}

// moveCursor walks the palette and loads the selected token's color.
func (m *Model) moveCursor(delta int) {
	if m.Palette == nil || m.Palette.Len() == 0 {
		return
	}
	n := m.Palette.Len()
	if m.Cursor < 0 {
		if delta > 0 {
			m.Cursor = 0
		} else {
			m.Cursor = n - 1
		}
	} else {
		m.Cursor = (m.Cursor + delta + n) % n
	}

	m.Input.SetValue(m.Palette.At(m.Cursor).Hex)
	m.Input.CursorEnd()
	m.recompute()
}

// followCursor keeps the cursor on the same token name across a reload and
// clamps it when that token is gone.
func followCursor(prev, next *domain.Palette, cursor int) int {
	if cursor < 0 {
		return cursor
	}
	if prev != nil && cursor < prev.Len() {
		if i, ok := next.Index(prev.At(cursor).Name); ok {
			return i
		}
	}
	return min(cursor, next.Len()-1)
}

//nolint:gocritic // hugeParam ignored
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return MsgPaletteChanged{}
	}
}

//nolint:gocritic // hugeParam ignored
func (m Model) reloadPalette() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		p, err := reload()
		return MsgPaletteReloaded{Palette: p, Err: err}
	}
}
