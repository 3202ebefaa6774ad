/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsStable(t *testing.T) {
	assert.Equal(t, Hash("seed-123"), Hash("seed-123"))
	assert.NotEqual(t, Hash("seed-123"), Hash("seed-124"))
}

func TestHashEmptyString(t *testing.T) {
	// Offset basis run through the avalanche step.
	h := fnvOffset
	h += h << 13
	h ^= h >> 7
	h += h << 3
	h ^= h >> 17

	assert.Equal(t, h, Hash(""))
}

func TestHashUsesUTF16Units(t *testing.T) {
	// U+1F3B2 is a surrogate pair in UTF-16, so it must hash as two units.
	want := fnvOffset
	for _, unit := range []uint32{0xD83C, 0xDFB2} {
		want ^= unit
		want *= fnvPrime
	}
	want += want << 13
	want ^= want >> 7
	want += want << 3
	want ^= want >> 17

	assert.Equal(t, want, Hash("\U0001F3B2"))
}

func TestGeneratorSequenceRepeats(t *testing.T) {
	a := NewGenerator("classroom")
	b := NewGenerator("classroom")

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestGeneratorFloatRange(t *testing.T) {
	g := NewGenerator("range")

	for i := 0; i < 10000; i++ {
		f := g.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestGeneratorIntN(t *testing.T) {
	g := NewGenerator("intn")
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := g.IntN(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
		seen[v] = true
	}

	assert.Len(t, seen, 3)
	assert.Panics(t, func() { g.IntN(0) })
}

func TestDeriveSeed(t *testing.T) {
	tests := []struct {
		base  string
		parts []string
		want  string
	}{
		{"s", nil, "s"},
		{"s", []string{"Ana"}, "sAna"},
		{"s", []string{"Ana", "Beto"}, "sAna|Beto"},
		{"s", []string{"Ana", "Beto", "Eva", "trio"}, "sAna|Beto|Eva|trio"},
		{"s", []string{"Ana", "solo"}, "sAna|solo"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveSeed(tt.base, tt.parts...))
	}
}
