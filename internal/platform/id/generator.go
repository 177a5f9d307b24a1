package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator mints opaque identifiers for rows created by the service
// itself, such as audit records. Seeded entities keep their
// human-readable public ids.
type Generator interface {
	NewID() (string, error)
}

const idByteLength = 16

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a 32-character lowercase hex string from a CSPRNG.
func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, idByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate id bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
