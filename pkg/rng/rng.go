// Package rng provides the randomness capability used by the game. Callers
// pass a Source explicitly instead of relying on a global generator so
// rounds can be replayed from a seed.
//
//go:generate mockgen -package mockrng -source=rng.go -destination=mock/mockrng.go Source
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the randomness provider for the game.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// New returns a deterministic Source seeded with seed. The returned source
// is not safe for concurrent use.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint: gosec
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("could not read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
