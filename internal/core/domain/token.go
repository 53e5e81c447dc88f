package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// ColorToken is a named color of a design system palette.
type ColorToken struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Usage string `json:"usage,omitempty"`
}

// RGB returns the parsed color of the token.
func (t ColorToken) RGB() (RGB, bool) {
	return ParseHex(t.Hex)
}

// Palette is an ordered, immutable set of color tokens.
// Token order is significant: it decides ties in nearest lookups.
type Palette struct {
	name   string
	tokens []ColorToken
	index  map[string]int
}

// NewPalette validates tokens and returns a palette holding a private copy of them.
func NewPalette(name string, tokens []ColorToken) (*Palette, error) {
	if len(tokens) == 0 {
		return nil, zerr.With(ErrEmptyPalette, "palette", name)
	}

	p := &Palette{
		name:   name,
		tokens: make([]ColorToken, len(tokens)),
		index:  make(map[string]int, len(tokens)),
	}
	copy(p.tokens, tokens)

	for i, tok := range p.tokens {
		if tok.Name == "" {
			return nil, zerr.With(ErrMissingTokenName, "index", strconv.Itoa(i))
		}
		if _, exists := p.index[tok.Name]; exists {
			return nil, zerr.With(ErrDuplicateToken, "token", tok.Name)
		}
		if _, ok := ParseHex(tok.Hex); !ok {
			err := zerr.With(ErrInvalidTokenHex, "token", tok.Name)
			return nil, zerr.With(err, "hex", tok.Hex)
		}
		p.index[tok.Name] = i
	}

	return p, nil
}

// Name returns the display name of the palette.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of tokens.
func (p *Palette) Len() int {
	return len(p.tokens)
}

// Tokens returns a copy of the tokens in palette order.
func (p *Palette) Tokens() []ColorToken {
	out := make([]ColorToken, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// At returns the token at position i in palette order.
func (p *Palette) At(i int) ColorToken {
	return p.tokens[i]
}

// Index returns the position of the token named name.
func (p *Palette) Index(name string) (int, bool) {
	i, ok := p.index[name]
	return i, ok
}

// Nearest finds the palette token closest to hex under dist.
// A nil dist means Euclidean RGB distance.
func (p *Palette) Nearest(hex string, dist DistanceFunc) Match {
	return NearestBy(hex, p.tokens, dist)
}

// Match is the outcome of a single nearest token lookup.
// Found is false when the input is not a valid color or there was nothing to compare against.
type Match struct {
	Input    string
	Color    RGB
	Token    ColorToken
	Distance float64
	Found    bool
}

// Nearest returns the token in tokens closest to hex by Euclidean RGB distance.
// The first token in list order wins ties. The boolean is false when hex does
// not parse or no token has a valid color.
func Nearest(hex string, tokens []ColorToken) (ColorToken, bool) {
	m := NearestBy(hex, tokens, Distance)
	return m.Token, m.Found
}

// NearestBy is Nearest with a caller supplied metric.
func NearestBy(hex string, tokens []ColorToken, dist DistanceFunc) Match {
	if dist == nil {
		dist = Distance
	}

	m := Match{Input: hex}
	c, ok := ParseHex(hex)
	if !ok {
		return m
	}
	m.Color = c

	for _, tok := range tokens {
		tc, ok := tok.RGB()
		if !ok {
			continue
		}
		d := dist(c, tc)
		// Strictly smaller only: the earliest token keeps a tie.
		if !m.Found || d < m.Distance {
			m.Token = tok
			m.Distance = d
			m.Found = true
		}
	}

	return m
}
