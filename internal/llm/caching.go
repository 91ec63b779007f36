package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docentlabs/docent/internal/cache"
)

// CachingProvider is a decorator that serves repeated requests from an
// in-memory TTL cache. A cache hit makes no provider call.
type CachingProvider struct {
	inner Provider
	cache *cache.Cache
	ttl   time.Duration
}

// cachedResponse is the serialized form stored in the cache.
type cachedResponse struct {
	Content    json.RawMessage `json:"content"`
	Model      string          `json:"model"`
	StopReason string          `json:"stop_reason"`
}

// WithCache wraps a Provider with response caching. Requests marked
// NoCache bypass the cache entirely. Entries are written only after a
// fully successful generation.
func WithCache(p Provider, c *cache.Cache, ttl time.Duration) Provider {
	return &CachingProvider{inner: p, cache: c, ttl: ttl}
}

func (cp *CachingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if req.NoCache {
		return cp.inner.Generate(ctx, req)
	}

	key := cp.cacheKey(ctx, req)

	if raw, ok := cp.cache.Get(key); ok {
		var stored cachedResponse
		if err := json.Unmarshal([]byte(raw), &stored); err == nil {
			return &Response{
				Content:    stored.Content,
				Model:      stored.Model,
				StopReason: stored.StopReason,
				Cached:     true,
			}, nil
		}
		// Corrupt entry: drop it and fall through to the provider.
		cp.cache.Delete(key)
	}

	resp, err := cp.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	stored, marshalErr := json.Marshal(cachedResponse{
		Content:    resp.Content,
		Model:      resp.Model,
		StopReason: resp.StopReason,
	})
	if marshalErr == nil {
		cp.cache.Set(key, string(stored), cp.ttl)
	}

	return resp, nil
}

func (cp *CachingProvider) ModelID() string {
	return cp.inner.ModelID()
}

// cacheKey derives a stable key from the purpose, model, and full request.
func (cp *CachingProvider) cacheKey(ctx context.Context, req Request) string {
	purpose := PurposeFrom(ctx)
	payload := fmt.Sprintf("%s\n%s", cp.inner.ModelID(), serializeRequest(req))
	return cache.Key(purpose, payload)
}
