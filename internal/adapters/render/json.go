package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSON renders machine-readable output.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type matchDTO struct {
	Input    string             `json:"input"`
	Found    bool               `json:"found"`
	Color    string             `json:"color,omitempty"`
	Token    *domain.ColorToken `json:"token,omitempty"`
	Distance *float64           `json:"distance,omitempty"`
}

type paletteDTO struct {
	Name   string              `json:"name"`
	Tokens []domain.ColorToken `json:"tokens"`
}

// RenderMatches writes the matches as a JSON array.
func (j *JSON) RenderMatches(w io.Writer, matches []domain.Match) error {
	out := make([]matchDTO, len(matches))
	for i, m := range matches {
		out[i] = matchDTO{Input: m.Input, Found: m.Found}
		if m.Found {
			tok := m.Token
			dist := m.Distance
			out[i].Color = m.Color.Hex()
			out[i].Token = &tok
			out[i].Distance = &dist
		}
	}
	return encode(w, out)
}

// RenderPalette writes the palette as a JSON object.
func (j *JSON) RenderPalette(w io.Writer, palette *domain.Palette) error {
	return encode(w, paletteDTO{Name: palette.Name(), Tokens: palette.Tokens()})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode json")
	}
	return nil
}
