package di

import (
	"github.com/redis/go-redis/v9"

	"plantcare_backend/internal/feature/catalog/usecase"
	"plantcare_backend/internal/platform/cache"
	"plantcare_backend/internal/platform/config"
)

// NewSpeciesRepository wires the catalog lookup.
// If Redis is available, the upstream client is wrapped in a read-through
// cache. Otherwise every search goes straight to the upstream API.
func NewSpeciesRepository(rdb *redis.Client, cfg *config.Config, upstream usecase.SpeciesRepository) usecase.SpeciesRepository {
	if rdb != nil {
		return cache.NewCachingSpeciesRepository(rdb, cfg.CatalogCacheTTL, upstream, "species")
	}
	return upstream
}
