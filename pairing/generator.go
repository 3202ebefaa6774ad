/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import (
	"strings"
	"unicode/utf16"
)

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619

	// SeedSeparator joins the parts appended to a base seed by DeriveSeed.
	SeedSeparator = "|"
)

// Hash returns a 32-bit FNV-1a hash of s followed by a single xorshift
// avalanche step. It runs over UTF-16 code units rather than bytes, so the
// same seed hashes identically in a browser.
func Hash(s string) uint32 {
	h := fnvOffset
	for _, unit := range utf16.Encode([]rune(s)) {
		h ^= uint32(unit)
		h *= fnvPrime
	}

	h += h << 13
	h ^= h >> 7
	h += h << 3
	h ^= h >> 17

	return h
}

// DeriveSeed builds a sub-seed for an independent stream. The base comes
// first, immediately followed by parts joined with SeedSeparator.
func DeriveSeed(base string, parts ...string) string {
	return base + strings.Join(parts, SeedSeparator)
}

// Generator is a mulberry32 stream. The zero value is a valid generator
// seeded with 0, but callers normally want NewGenerator.
type Generator struct {
	state uint32
}

func NewGenerator(seed string) *Generator {
	return &Generator{state: Hash(seed)}
}

// Uint32 advances the stream and returns the next value.
func (g *Generator) Uint32() uint32 {
	g.state += 0x6D2B79F5

	t := g.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)

	return t ^ t>>14
}

// Float64 returns the next value scaled into [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) / (1 << 32)
}

// IntN returns the next value scaled into [0, n). It panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("pairing: invalid argument to IntN")
	}

	return int(g.Float64() * float64(n))
}
