package config

import "strings"

// CacheConfig selects the scoreboard cache backend.
type CacheConfig struct {
	Backend  string // "memory" or "redis"
	RedisURL string
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:  strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)),
		RedisURL: envOrDefault(envRedisURL, defaultRedisURL),
	}
}
