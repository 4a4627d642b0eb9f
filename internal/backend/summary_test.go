package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/documents/policy.pdf/summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"title": "Policy overview"})
	}))
	defer srv.Close()

	cache := NewSummaryCache(NewClient(srv.URL))
	ctx := context.Background()

	first, err := cache.DocumentSummary(ctx, "policy.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Policy overview", first["title"])

	// Second read is served from cache.
	_, err = cache.DocumentSummary(ctx, "policy.pdf")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	// Invalidation forces a refetch.
	cache.Invalidate("policy.pdf")
	_, err = cache.DocumentSummary(ctx, "policy.pdf")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestSummaryCache_ErrorNotCached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cache := NewSummaryCache(NewClient(srv.URL))
	ctx := context.Background()

	_, err := cache.DocumentSummary(ctx, "missing.pdf")
	require.Error(t, err)
	_, err = cache.DocumentSummary(ctx, "missing.pdf")
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}
