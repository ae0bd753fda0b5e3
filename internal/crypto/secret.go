package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// APITokenPrefix marks API token secrets so they are recognizable in logs and UIs.
	APITokenPrefix = "bmt_"

	secretBytes   = 32
	displayLength = len(APITokenPrefix) + 8
)

// GenerateAPISecret returns a new API token secret: the prefix followed by
// 32 bytes of crypto/rand output in hex.
func GenerateAPISecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating api secret: %w", err)
	}
	return APITokenPrefix + hex.EncodeToString(buf), nil
}

// HashAPISecret returns the lookup digest stored in place of the secret.
func HashAPISecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// DisplayPrefix returns the leading characters of a secret that are safe to show.
func DisplayPrefix(secret string) string {
	if len(secret) <= displayLength {
		return secret
	}
	return secret[:displayLength]
}

// LooksLikeAPISecret reports whether s has the shape of a generated secret.
func LooksLikeAPISecret(s string) bool {
	rest, ok := strings.CutPrefix(s, APITokenPrefix)
	if !ok || len(rest) != secretBytes*2 {
		return false
	}
	_, err := hex.DecodeString(rest)
	return err == nil
}
