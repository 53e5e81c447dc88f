package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// hexColorPattern matches exactly six hex digits with an optional leading '#'.
// Shorthand (#abc) and alpha (#rrggbbaa) forms are intentionally not matched.
var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex converts a six digit hex color into an RGB triple.
// The boolean is false when s is not a six digit hex color.
func ParseHex(s string) (RGB, bool) {
	if !hexColorPattern.MatchString(s) {
		return RGB{}, false
	}
	if s[0] == '#' {
		s = s[1:]
	}

	r, rOK := parseHexByte(s[0:2])
	g, gOK := parseHexByte(s[2:4])
	b, bOK := parseHexByte(s[4:6])
	if !rOK || !gOK || !bOK {
		return RGB{}, false
	}
	return RGB{R: r, G: g, B: b}, true
}

func parseHexByte(value string) (uint8, bool) {
	parsed, err := strconv.ParseUint(value, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(parsed), true
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// DistanceFunc measures how far apart two colors are. Implementations must
// return non-negative values and zero for identical colors.
type DistanceFunc func(a, b RGB) float64

// Distance is the Euclidean distance between a and b in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
