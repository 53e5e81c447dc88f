package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/zerr"
)

func blackWhite() []domain.ColorToken {
	return []domain.ColorToken{
		{Name: "A", Hex: "#000000"},
		{Name: "B", Hex: "#FFFFFF"},
	}
}

func TestNearest_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantDist float64
	}{
		{name: "near black", input: "#010101", wantName: "A", wantDist: math.Sqrt(3)},
		// 0x80 is 128 from black but only 127 from white on every channel, so
		// this is not a tie; white wins. See ExactTiePicksFirst for a real tie.
		{name: "mid grey is closer to white", input: "#808080", wantName: "B", wantDist: math.Sqrt(3 * 127 * 127)},
		{name: "near white", input: "#FEFEFE", wantName: "B", wantDist: math.Sqrt(3)},
		{name: "exact match", input: "ffffff", wantName: "B", wantDist: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := domain.Nearest(tt.input, blackWhite())
			require.True(t, ok)
			assert.Equal(t, tt.wantName, tok.Name)

			m := domain.NearestBy(tt.input, blackWhite(), domain.Distance)
			assert.InDelta(t, tt.wantDist, m.Distance, 1e-9)
		})
	}
}

func TestNearest_ExactTiePicksFirst(t *testing.T) {
	tokens := []domain.ColorToken{
		{Name: "A", Hex: "#000000"},
		{Name: "C", Hex: "#FEFEFE"},
	}
	m := domain.NearestBy("#7F7F7F", tokens, domain.Distance)
	require.True(t, m.Found)
	assert.Equal(t, "A", m.Token.Name)
	assert.InDelta(t, math.Sqrt(3*127*127), m.Distance, 1e-9)

	// Reversing the list flips the winner.
	reversed := []domain.ColorToken{tokens[1], tokens[0]}
	tok, ok := domain.Nearest("#7F7F7F", reversed)
	require.True(t, ok)
	assert.Equal(t, "C", tok.Name)
}

func TestNearest_Malformed(t *testing.T) {
	for _, in := range []string{"not-a-color", "#abc", ""} {
		tok, ok := domain.Nearest(in, blackWhite())
		assert.False(t, ok)
		assert.Equal(t, domain.ColorToken{}, tok)
	}
}

func TestNearest_EmptyTokens(t *testing.T) {
	_, ok := domain.Nearest("#123456", nil)
	assert.False(t, ok)
}

func TestNearest_DuplicateColorsFirstWins(t *testing.T) {
	tokens := []domain.ColorToken{
		{Name: "first", Hex: "#336699"},
		{Name: "second", Hex: "#336699"},
		{Name: "third", Hex: "336699"},
	}
	tok, ok := domain.Nearest("#336699", tokens)
	require.True(t, ok)
	assert.Equal(t, "first", tok.Name)
}

func TestNearest_SkipsInvalidTokens(t *testing.T) {
	tokens := []domain.ColorToken{
		{Name: "broken", Hex: "#zzz"},
		{Name: "ok", Hex: "#ff0000"},
	}
	tok, ok := domain.Nearest("#000000", tokens)
	require.True(t, ok)
	assert.Equal(t, "ok", tok.Name)
}

func TestNearestBy_CustomMetric(t *testing.T) {
	// A metric that only looks at the blue channel.
	blueOnly := func(a, b domain.RGB) float64 {
		return math.Abs(float64(a.B) - float64(b.B))
	}
	tokens := []domain.ColorToken{
		{Name: "red", Hex: "#ff0000"},
		{Name: "blue", Hex: "#0000ff"},
	}
	m := domain.NearestBy("#00ffee", tokens, blueOnly)
	require.True(t, m.Found)
	assert.Equal(t, "blue", m.Token.Name)
	assert.InDelta(t, 17, m.Distance, 1e-9)
	assert.Equal(t, domain.RGB{G: 0xff, B: 0xee}, m.Color)
	assert.Equal(t, "#00ffee", m.Input)
}

func TestNearestBy_NilMetricDefaultsToEuclidean(t *testing.T) {
	m := domain.NearestBy("#010101", blackWhite(), nil)
	require.True(t, m.Found)
	assert.InDelta(t, math.Sqrt(3), m.Distance, 1e-9)
}

func TestNewPalette(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := domain.NewPalette("mono", blackWhite())
		require.NoError(t, err)
		assert.Equal(t, "mono", p.Name())
		assert.Equal(t, 2, p.Len())
		assert.Equal(t, "B", p.At(1).Name)

		i, ok := p.Index("B")
		require.True(t, ok)
		assert.Equal(t, 1, i)

		_, ok = p.Index("missing")
		assert.False(t, ok)

		m := p.Nearest("#7F7F7F", nil)
		assert.Equal(t, "A", m.Token.Name)
	})

	t.Run("immutable", func(t *testing.T) {
		tokens := blackWhite()
		p, err := domain.NewPalette("mono", tokens)
		require.NoError(t, err)

		tokens[0].Name = "changed"
		out := p.Tokens()
		out[1].Hex = "#123456"

		assert.Equal(t, "A", p.At(0).Name)
		assert.Equal(t, "#FFFFFF", p.At(1).Hex)
	})

	tests := []struct {
		name    string
		tokens  []domain.ColorToken
		wantErr error
		metaKey string
		metaVal string
	}{
		{
			name:    "empty",
			tokens:  nil,
			wantErr: domain.ErrEmptyPalette,
			metaKey: "palette",
			metaVal: "bad",
		},
		{
			name:    "missing name",
			tokens:  []domain.ColorToken{{Name: "", Hex: "#000000"}},
			wantErr: domain.ErrMissingTokenName,
			metaKey: "index",
			metaVal: "0",
		},
		{
			name:    "duplicate",
			tokens:  []domain.ColorToken{{Name: "A", Hex: "#000000"}, {Name: "A", Hex: "#111111"}},
			wantErr: domain.ErrDuplicateToken,
			metaKey: "token",
			metaVal: "A",
		},
		{
			name:    "invalid hex",
			tokens:  []domain.ColorToken{{Name: "A", Hex: "#abc"}},
			wantErr: domain.ErrInvalidTokenHex,
			metaKey: "hex",
			metaVal: "#abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewPalette("bad", tt.tokens)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorContains(t, err, tt.wantErr.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, tt.metaVal, zErr.Metadata()[tt.metaKey])
		})
	}
}
