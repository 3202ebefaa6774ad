/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// FallbackSeed is used when a participant reveals without a shared seed.
// The result is reproducible on that device but not coordinated with anyone.
const FallbackSeed = "local-default"

var seedSpace = big.NewInt(1_000_000_000)

// NewSeed returns a fresh, human-shareable seed such as
// "seed-482913-771234005". Nothing about it is required for determinism;
// any string works as a seed.
func NewSeed(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, seedSpace)
	if err != nil {
		return "", fmt.Errorf("generate seed: %w", err)
	}

	return fmt.Sprintf("seed-%d-%d", now.UnixMilli()%1_000_000, n.Int64()), nil
}
