package ports

import (
	"io"

	"go.trai.ch/swatch/internal/core/domain"
)

// Renderer defines the interface for presenting lookup results and palettes.
type Renderer interface {
	// RenderMatches writes one entry per match, in order. Matches that were not
	// found are rendered without a token.
	RenderMatches(w io.Writer, matches []domain.Match) error

	// RenderPalette writes every token of the palette in palette order.
	RenderPalette(w io.Writer, palette *domain.Palette) error
}
