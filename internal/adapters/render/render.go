// Package render presents lookup results and palettes as text or JSON.
package render

import (
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns the renderer for format. An empty format selects text.
// profile controls color output of the text renderer.
func New(format string, profile termenv.Profile) (ports.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewText(profile), nil
	case FormatJSON:
		return NewJSON(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}
