package engine

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex SHA-256 of a payload, used to detect unchanged
// inputs.
func Digest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
