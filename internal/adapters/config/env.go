package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
)

// EnvPalette is the environment variable naming the palette file.
const EnvPalette = "SWATCH_PALETTE"

// EnvLogFormat selects the log format: "json" or the default pretty output.
const EnvLogFormat = "SWATCH_LOG_FORMAT"

// LoadEnvFile loads variables from a dotenv file without overriding values
// already present in the environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to load env file"), "path", path)
	}
	return nil
}

// ResolvePath picks the palette file: the explicit flag value first, then
// SWATCH_PALETTE. An empty result selects the built-in palette.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPalette)
}

// JSONLogs reports whether SWATCH_LOG_FORMAT asks for JSON logs.
func JSONLogs() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(EnvLogFormat)), "json")
}
