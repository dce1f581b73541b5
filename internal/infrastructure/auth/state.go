package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateState produces a 32-byte URL-safe random state for the OAuth
// redirect round-trip.
func GenerateState() (string, error) {
	stateBytes := make([]byte, 32)
	if _, err := rand.Read(stateBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(stateBytes), nil
}
