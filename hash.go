package gopidgin

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash, direction and lexicon fingerprint.
// Including the fingerprint means a lexicon reload never serves stale results.
func CacheKey(hash string, dir Direction, fingerprint string) string {
	return hash + ":" + string(dir) + ":" + fingerprint
}
