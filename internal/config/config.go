package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// In all cases the default behavior should be for the docker compose setup
type Config struct {
	Port     string `env:"PORT" envDefault:"9446"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"local-storage.db"`

	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`

	RedisAddress   string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"members-ledger:"`

	// SeedFile overrides the embedded initial data when set.
	SeedFile     string `env:"SEED_FILE"`
	NumOperators int    `env:"NUM_OPERATORS" envDefault:"1"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.NumOperators < 1 {
		return nil, fmt.Errorf("NUM_OPERATORS must be at least 1, got %d", cfg.NumOperators)
	}

	return &cfg, nil
}

// PostgresConnectionString builds the lib/pq DSN for the configured database.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
