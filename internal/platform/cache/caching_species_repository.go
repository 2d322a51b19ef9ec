// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"plantcare_backend/internal/feature/catalog/domain/entity"
	"plantcare_backend/internal/feature/catalog/usecase"
)

// CachingSpeciesRepository decorates a SpeciesRepository with Redis caching.
// Catalog data changes rarely, so search results are kept for a long TTL to
// spare the upstream API its per-key rate limits.
type CachingSpeciesRepository struct {
	inner     usecase.SpeciesRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingSpeciesRepository decorates a SpeciesRepository with Redis
// caching. If ttl is 0, it defaults to 12 hours. If namespace is empty, it
// uses "species".
func NewCachingSpeciesRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SpeciesRepository, namespace string) *CachingSpeciesRepository {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if namespace == "" {
		namespace = "species"
	}
	return &CachingSpeciesRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search retrieves species, checking the cache first and falling back to the
// upstream catalog on a miss.
func (c *CachingSpeciesRepository) Search(ctx context.Context, query string) ([]entity.Species, error) {
	// Bypass the cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, query)
	}

	key := c.cacheKey(query)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Species
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the upstream catalog
	out, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingSpeciesRepository) cacheKey(query string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(query))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
