package cache

import "time"

// LayeredCache fronts the disk cache with a short-lived memory layer.
// Provider pools are small JSON blobs, so both layers store raw bytes.
type LayeredCache struct {
	memory Cache
	disk   Cache

	memoryTTL time.Duration
	diskTTL   time.Duration
}

// NewLayeredCache creates a new layered cache with independent TTLs
// per layer.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory:    NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:      NewDiskCache(diskDir, diskTTL),
		memoryTTL: memoryTTL,
		diskTTL:   diskTTL,
	}
}

// Get retrieves a value, checking memory first, then disk. A disk hit
// is promoted back into the memory layer.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, c.memoryTTL)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers, each with its own TTL.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	memTTL := ttl
	diskTTL := ttl
	if ttl == 0 {
		memTTL = c.memoryTTL
		diskTTL = c.diskTTL
	}

	if err := c.memory.Set(key, value, memTTL); err != nil {
		return err
	}
	return c.disk.Set(key, value, diskTTL)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	_ = c.disk.Delete(key)
	return nil
}

// Clear removes all values from both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
