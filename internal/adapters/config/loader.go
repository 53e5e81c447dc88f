// Package config provides the palette loader for swatch.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.PaletteLoader for YAML palette files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new palette loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the palette at path. An empty path loads the built-in palette.
func (l *Loader) Load(path string) (*domain.Palette, error) {
	if path == "" {
		return l.parse(defaultPalette, DefaultSource)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPaletteReadFailed.Error()), "path", path)
	}

	return l.parse(data, path)
}

func (l *Loader) parse(data []byte, source string) (*domain.Palette, error) {
	var file Palettefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPaletteParseFailed.Error()), "path", source)
	}

	switch file.Version {
	case SchemaVersion:
	case "":
		if l.Logger != nil {
			l.Logger.Warn("palette " + source + " has no version, assuming " + strconv.Quote(SchemaVersion))
		}
	default:
		err := zerr.With(domain.ErrUnsupportedVersion, "version", file.Version)
		return nil, zerr.With(err, "path", source)
	}

	name := strings.TrimSpace(file.Name)
	if name == "" {
		name = nameFromSource(source)
	}

	tokens := make([]domain.ColorToken, len(file.Tokens))
	for i, dto := range file.Tokens {
		tokens[i] = domain.ColorToken{
			Name:  strings.TrimSpace(dto.Name),
			Hex:   strings.TrimSpace(dto.Hex),
			Usage: strings.TrimSpace(dto.Usage),
		}
	}

	p, err := domain.NewPalette(name, tokens)
	if err != nil {
		return nil, zerr.With(err, "path", source)
	}
	return p, nil
}

func nameFromSource(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
