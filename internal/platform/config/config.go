// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppPort int `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        int    `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME" envDefault:"plantcare"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`

	// Cache (Redis). Optional: the server runs uncached when unset.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Plant catalog (Perenual API)
	PerenualAPIKey  string        `env:"PERENUAL_API_KEY"`
	PerenualBaseURL string        `env:"PERENUAL_BASE_URL" envDefault:"https://perenual.com"`
	PerenualTimeout time.Duration `env:"PERENUAL_TIMEOUT" envDefault:"10s"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"12h"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// RedisAddr builds the Redis address, or returns "" when Redis is not
// configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}
