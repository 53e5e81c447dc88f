package ports

import "go.trai.ch/swatch/internal/core/domain"

// PaletteLoader defines the interface for loading a color token palette.
//
//go:generate go run go.uber.org/mock/mockgen -source=palette_loader.go -destination=mocks/mock_palette_loader.go -package=mocks
type PaletteLoader interface {
	// Load reads the palette at path. An empty path selects the built-in palette.
	Load(path string) (*domain.Palette, error)
}
