package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/swatch/internal/ui/style"
)

const helpText = "↑/↓ browse tokens · esc quit"

// View renders the picker.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	sections := []string{m.header(), m.Input.View(), ""}

	if panel := m.matchPanel(); panel != "" {
		sections = append(sections, panel)
	} else {
		sections = append(sections, mutedStyle.Render("enter a six digit hex color"))
	}

	sections = append(sections, "", m.tokenList(), "", mutedStyle.Render(helpText))
	if m.Err != nil {
		sections = append(sections, errorStyle.Render(style.Cross+" reload failed: "+m.Err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

//nolint:gocritic // hugeParam ignored
func (m Model) header() string {
	title := titleStyle.Render("SWATCH")
	if m.Palette == nil {
		return title
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		subtitleStyle.Render(fmt.Sprintf("%s · %d tokens", m.Palette.Name(), m.Palette.Len())),
	)
}

// matchPanel shows the closest token, or nothing when the input does not parse.
//
//nolint:gocritic // hugeParam ignored
func (m Model) matchPanel() string {
	if !m.Match.Found {
		return ""
	}
	r := lipgloss.DefaultRenderer()
	tok := m.Match.Token
	tokHex := tok.Hex
	if c, ok := tok.RGB(); ok {
		tokHex = c.Hex()
	}

	line := style.Swatch(r, m.Match.Color.Hex()) + " " + m.Match.Color.Hex() +
		"  " + style.Arrow + "  " +
		style.Swatch(r, tokHex) + " " + tokenNameStyle.Render(tok.Name) + "  " + tokHex +
		mutedStyle.Render(fmt.Sprintf("  Δ %.2f", m.Match.Distance))

	lines := []string{line}
	if tok.Usage != "" {
		lines = append(lines, mutedStyle.Render(tok.Usage))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

//nolint:gocritic // hugeParam ignored
func (m Model) tokenList() string {
	if m.Palette == nil {
		return ""
	}
	r := lipgloss.DefaultRenderer()

	var s strings.Builder
	for i, tok := range m.Palette.Tokens() {
		marker := "  "
		if i == m.Cursor {
			marker = style.Pointer + " "
		}
		line := marker + style.Swatch(r, tok.Hex) + " " + tok.Name
		switch {
		case i == m.Cursor:
			line = selectedStyle.Render(line)
		case m.Match.Found && tok.Name == m.Match.Token.Name:
			line = tokenNameStyle.Render(line)
		}
		s.WriteString(line + "\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
