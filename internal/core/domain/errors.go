package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPalette is returned when a palette defines no tokens.
	ErrEmptyPalette = zerr.New("palette has no tokens")

	// ErrMissingTokenName is returned when a token has an empty name.
	ErrMissingTokenName = zerr.New("token name is required")

	// ErrDuplicateToken is returned when two tokens of a palette share a name.
	ErrDuplicateToken = zerr.New("duplicate token name")

	// ErrInvalidTokenHex is returned when a token's color is not a six digit hex value.
	ErrInvalidTokenHex = zerr.New("token color must be a six digit hex value")

	// ErrUnknownMetric is returned when a distance metric name is not recognized.
	ErrUnknownMetric = zerr.New("unknown distance metric, expected 'rgb' or 'cielab'")

	// ErrUnknownFormat is returned when an output format name is not recognized.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'text' or 'json'")

	// ErrPaletteReadFailed is returned when a palette file cannot be read.
	ErrPaletteReadFailed = zerr.New("failed to read palette file")

	// ErrPaletteParseFailed is returned when a palette file is not valid YAML.
	ErrPaletteParseFailed = zerr.New("failed to parse palette file")

	// ErrUnsupportedVersion is returned when a palette file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported palette file version")

	// ErrNoInputColors is returned when a lookup is requested without any colors.
	ErrNoInputColors = zerr.New("no input colors given")

	// ErrWatchFailed is returned when the palette file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch palette file")
)
