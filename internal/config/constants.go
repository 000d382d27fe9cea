package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envTimezone        = "SCOREBOARD_TIMEZONE"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envESPNBaseURL     = "ESPN_BASE_URL"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envCacheBackend    = "CACHE_BACKEND"
	envRedisURL        = "REDIS_URL"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort        = "3000"
	defaultProvider    = "espn"
	defaultTimezone    = "America/New_York"
	defaultMetricsPort = "9090"
	defaultServiceName = "scoreboard-relay"
	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	// Bounded so a stalled upstream cannot hold a request open indefinitely.
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultCacheBackend    = "memory"
	defaultRedisURL        = "redis://localhost:6379/0"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

var defaultCORSOrigins = []string{"*"}
