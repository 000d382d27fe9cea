package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	Timezone    string
	CORSOrigins []string
	ESPN        ESPNConfig
	Cache       CacheConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first; real env vars win.
func Load() Config {
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFiles is Load with explicit .env paths; missing files are ignored.
func LoadFiles(paths ...string) Config {
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
	return fromEnv()
}

func fromEnv() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		Timezone:    envOrDefault(envTimezone, defaultTimezone),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		ESPN:        loadESPN(),
		Cache:       loadCache(),
		Metrics:     loadMetrics(),
		Log:         loadLog(),
	}
}
