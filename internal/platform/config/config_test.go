package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "plantcare", cfg.DBName)
	assert.False(t, cfg.RunMigrations)
	assert.Equal(t, 10*time.Second, cfg.PerenualTimeout)
	assert.Equal(t, 12*time.Hour, cfg.CatalogCacheTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("CATALOG_CACHE_TTL", "30m")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 30*time.Minute, cfg.CatalogCacheTTL)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     5432,
		DBUser:     "postgres",
		DBPassword: "hunter2",
		DBName:     "plantcare",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=hunter2 dbname=plantcare port=5432 sslmode=disable",
		cfg.DSN())
}

func TestConfig_RedisAddr(t *testing.T) {
	t.Run("configured host", func(t *testing.T) {
		cfg := &Config{RedisHost: "cache.internal", RedisPort: 6379}
		assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
	})

	t.Run("unset host means no redis", func(t *testing.T) {
		cfg := &Config{RedisPort: 6379}
		assert.Empty(t, cfg.RedisAddr())
	})
}
