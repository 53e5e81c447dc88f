package config

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/swatch/internal/core/domain"
)

// Fingerprint returns a stable 16 hex digit digest of the palette's tokens in order.
// Names and colors contribute; usage notes and the palette name do not.
func Fingerprint(p *domain.Palette) string {
	d := xxhash.New()
	for _, tok := range p.Tokens() {
		c, _ := tok.RGB()
		_, _ = d.WriteString(tok.Name)
		_, _ = d.Write([]byte{0, c.R, c.G, c.B})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
