package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 hashers keyed with the integrity key.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool (re)initializes the pool so that every hasher is keyed with
// hashKey. Hashers created for a previous key are dropped with the old pool.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 of data using a pooled hasher.
// Safe for concurrent use once InitHasherPool has been called.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash rendered as lowercase hex, the form carried in the
// HashSHA256 header.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}
