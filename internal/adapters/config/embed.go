package config

import _ "embed"

// defaultPalette is the palette used when no palette file is configured.
//
//go:embed default.yaml
var defaultPalette []byte

// DefaultSource names the built-in palette in logs and errors.
const DefaultSource = "<built-in>"
