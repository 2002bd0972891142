package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

const (
	// Length of generated tokens. 21 alphanumeric characters carry ~125 bits
	// of entropy, enough to make collisions negligible at any realistic
	// session volume.
	Length = 21

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Generate returns a cryptographically secure random token of Length
// alphanumeric characters.
func Generate() (string, error) {
	out := make([]byte, 0, Length)
	buf := make([]byte, Length)

	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Join(ErrGenerationFailed, err)
		}
		for _, b := range buf {
			// Mask to 6 bits and reject values past the alphabet to keep
			// the distribution uniform.
			idx := int(b & 0x3f)
			if idx >= len(alphabet) {
				continue
			}
			out = append(out, alphabet[idx])
			if len(out) == Length {
				break
			}
		}
	}

	return string(out), nil
}

// Hash returns the lowercase hex-encoded SHA-256 digest of a token.
// Deterministic, so the digest can serve as a primary key while the raw
// token is never stored.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
