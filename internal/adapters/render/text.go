package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/ui/output"
	"go.trai.ch/swatch/internal/ui/style"
	"go.trai.ch/zerr"
)

// Text renders aligned, human-readable lines with color swatches.
type Text struct {
	r     *lipgloss.Renderer
	muted lipgloss.Style
	miss  lipgloss.Style
}

// NewText creates a text renderer using profile for colors.
func NewText(profile termenv.Profile) *Text {
	r := output.NewRenderer(nil, profile)
	return &Text{
		r:     r,
		muted: r.NewStyle().Foreground(style.Slate),
		miss:  r.NewStyle().Foreground(style.Red),
	}
}

// RenderMatches writes one line per match. Unmatched inputs omit the token columns.
func (t *Text) RenderMatches(w io.Writer, matches []domain.Match) error {
	inputW, nameW := 0, 0
	for _, m := range matches {
		inputW = max(inputW, lipgloss.Width(m.Input))
		if m.Found {
			nameW = max(nameW, lipgloss.Width(m.Token.Name))
		}
	}

	var sb strings.Builder
	for _, m := range matches {
		if !m.Found {
			line := "   " + pad(m.Input, inputW) + "  " + t.miss.Render(style.Cross+" no match")
			sb.WriteString(line + "\n")
			continue
		}

		tokHex := tokenHex(m.Token)
		line := style.Swatch(t.r, m.Color.Hex()) + " " +
			pad(m.Input, inputW) + "  " +
			style.Arrow + " " +
			style.Swatch(t.r, tokHex) + " " +
			pad(m.Token.Name, nameW) + "  " +
			tokHex + "  " +
			fmt.Sprintf("%6.2f", m.Distance)
		if m.Token.Usage != "" {
			line += "  " + t.muted.Render(m.Token.Usage)
		}
		sb.WriteString(line + "\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return zerr.Wrap(err, "failed to write matches")
	}
	return nil
}

// RenderPalette writes a header followed by one line per token.
func (t *Text) RenderPalette(w io.Writer, palette *domain.Palette) error {
	tokens := palette.Tokens()

	nameW := 0
	for _, tok := range tokens {
		nameW = max(nameW, lipgloss.Width(tok.Name))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d tokens)\n", palette.Name(), len(tokens)))
	for _, tok := range tokens {
		hex := tokenHex(tok)
		line := style.Swatch(t.r, hex) + " " + pad(tok.Name, nameW) + "  " + hex
		if tok.Usage != "" {
			line += "  " + t.muted.Render(tok.Usage)
		}
		sb.WriteString(line + "\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return zerr.Wrap(err, "failed to write palette")
	}
	return nil
}

// tokenHex normalizes a token color to "#rrggbb".
func tokenHex(tok domain.ColorToken) string {
	c, ok := tok.RGB()
	if !ok {
		return tok.Hex
	}
	return c.Hex()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
