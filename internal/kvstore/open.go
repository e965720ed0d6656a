package kvstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/members-ledger/internal/config"
)

// Open returns the store selected by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, error) {
	log := logger.WithField("backend", cfg.StorageBackend)

	var (
		store Store
		err   error
	)
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = NewMemoryStore()
	case config.BackendSQLite:
		log = log.WithField("path", cfg.SQLitePath)
		store, err = OpenSQLite(cfg.SQLitePath)
	case config.BackendPostgres:
		log = log.WithField("address", cfg.PostgresAddress)
		store, err = OpenPostgres(ctx, cfg.PostgresConnectionString())
	case config.BackendRedis:
		log = log.WithField("address", cfg.RedisAddress)
		store, err = OpenRedis(ctx, &redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.RedisKeyPrefix)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if err != nil {
		log.WithError(err).Error("kvstore.Open")
		return nil, err
	}

	log.Info("kvstore.Open.ready")
	return store, nil
}
