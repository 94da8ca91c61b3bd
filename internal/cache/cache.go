package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching provider responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for a provider and a scope within it
func Key(providerID, scope string) string {
	hash := sha256.Sum256([]byte(providerID + "|" + scope))
	return "moodquote:v1:" + hex.EncodeToString(hash[:])
}
