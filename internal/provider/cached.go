package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/daylightlab/moodquote/internal/cache"
	"github.com/daylightlab/moodquote/internal/model"
)

// CachedProvider serves a provider's pool from cache, falling back to
// a live fetch on miss. Fetch failures are never cached.
type CachedProvider struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider wraps a provider with a cache layer.
func NewCachedProvider(inner Provider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// ID returns the wrapped provider's identity.
func (p *CachedProvider) ID() string { return p.inner.ID() }

// Fetch returns the cached pool if present, otherwise fetches live and
// caches the result.
func (p *CachedProvider) Fetch(ctx context.Context) ([]model.Quote, error) {
	key := cache.Key(p.inner.ID(), "pool")

	if data, found := p.cache.Get(key); found {
		var quotes []model.Quote
		if err := json.Unmarshal(data, &quotes); err == nil {
			return quotes, nil
		}
		// Corrupt entry, drop it and fetch live
		_ = p.cache.Delete(key)
	}

	quotes, err := p.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(quotes); err == nil {
		_ = p.cache.Set(key, data, p.ttl)
	}

	return quotes, nil
}
