package server

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/config"
	"scoreboard-relay/internal/store"
)

const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
)

// redisStoreFactory remains a var for tests to override.
var redisStoreFactory = func(url string) (store.Store, error) {
	return store.NewRedisStore(url)
}

func buildStore(cfg config.CacheConfig, logger *slog.Logger) (store.Store, error) {
	switch cfg.Backend {
	case cacheBackendMemory, "":
		return store.NewMemoryStore(), nil
	case cacheBackendRedis:
		st, err := redisStoreFactory(cfg.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, "redis cache")
		}
		if logger != nil {
			logger.Info("using redis cache")
		}
		return st, nil
	default:
		return nil, errors.Newf("unknown cache backend %q", cfg.Backend)
	}
}
