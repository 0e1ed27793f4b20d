// Package naming generates the random tokens files are renamed to and
// composes them with the original extension.
package naming

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TokenLength is the number of hex characters in a token
const TokenLength = 32

// TokenGenerator produces a fresh token on every call
type TokenGenerator interface {
	NewToken() (string, error)
}

// UUIDGenerator renders random (version 4) UUIDs as 32 uppercase hex
// characters without separators.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator instance
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewToken returns a new token backed by crypto/rand
func (g *UUIDGenerator) NewToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(id[:])), nil
}
