package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewAPIToken creates a cryptographically random API token for the browser
// extension. The token is stored as-is so the dashboard can re-display it.
func NewAPIToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
