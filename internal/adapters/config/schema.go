package config

// Palettefile represents the structure of a palette YAML file.
type Palettefile struct {
	Version string     `yaml:"version"`
	Name    string     `yaml:"name"`
	Tokens  []TokenDTO `yaml:"tokens"`
}

// TokenDTO represents a color token definition in the palette file.
type TokenDTO struct {
	Name  string `yaml:"name"`
	Hex   string `yaml:"hex"`
	Usage string `yaml:"usage"`
}

// SchemaVersion is the only palette file version understood by the loader.
const SchemaVersion = "1"
