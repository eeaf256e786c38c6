package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher signs payloads with HMAC-SHA256 under a fixed key.
// A Hasher built with an empty key is disabled: [Hasher.Enabled] reports
// false and [Hasher.Verify] accepts everything.
//
// Hash instances are pooled per Hasher, so a single value is safe for
// concurrent use and cheap on hot paths.
type Hasher struct {
	key  []byte
	pool sync.Pool
}

// NewHasher creates a Hasher for key.
//
// Example usage:
//
//	hasher := utils.NewHasher(cfg.App.HashKey)
//	req.Header.Set(utils.HashHeader, hasher.Sum(body))
func NewHasher(key string) *Hasher {
	h := &Hasher{key: []byte(key)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.key)
	}
	return h
}

// Enabled reports whether the hasher has a key.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.key) > 0
}

// Hash computes the raw HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Sum returns the hex encoded digest of data, or "" for a disabled hasher.
func (h *Hasher) Sum(data []byte) string {
	if !h.Enabled() {
		return ""
	}
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether signature is the hex digest of data. The
// comparison runs in constant time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	if !h.Enabled() {
		return true
	}

	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Hash(data), expected)
}
