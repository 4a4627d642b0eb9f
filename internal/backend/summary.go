package backend

import (
	"context"
	"time"

	"github.com/doculens/doculens/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

const (
	summaryCacheTTL     = 5 * time.Minute
	summaryCacheCleanup = 10 * time.Minute
)

// SummaryCache serves document summaries cache-aside: hits come from an
// in-process TTL cache, misses go to the backend. Deleting a document must
// invalidate its entry so a re-uploaded file with the same name cannot serve
// a stale summary.
type SummaryCache struct {
	backend domain.Backend
	cache   *gocache.Cache
}

// NewSummaryCache creates a summary cache over the given backend.
func NewSummaryCache(backend domain.Backend) *SummaryCache {
	return &SummaryCache{
		backend: backend,
		cache:   gocache.New(summaryCacheTTL, summaryCacheCleanup),
	}
}

// DocumentSummary returns the summary for a document, from cache when fresh.
func (c *SummaryCache) DocumentSummary(ctx context.Context, id string) (map[string]any, error) {
	if cached, ok := c.cache.Get(id); ok {
		return cached.(map[string]any), nil
	}

	summary, err := c.backend.DocumentSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(id, summary)
	return summary, nil
}

// Invalidate drops the cached summary for a document.
func (c *SummaryCache) Invalidate(id string) {
	c.cache.Delete(id)
}
