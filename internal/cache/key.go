package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentKey returns the cache key for a source file: the SHA-256 of its
// bytes as lowercase hex. Identical content shares one outline regardless of
// where it was read from.
func ContentKey(source []byte) string {
	h := sha256.Sum256(source)
	return hex.EncodeToString(h[:])
}
