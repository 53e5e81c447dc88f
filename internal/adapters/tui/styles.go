package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/swatch/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			PaddingLeft(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1)

	tokenNameStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
