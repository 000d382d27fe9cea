package server

import (
	"log/slog"

	"scoreboard-relay/internal/config"
	"scoreboard-relay/internal/providers"
	"scoreboard-relay/internal/providers/espn"
	"scoreboard-relay/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreboardProvider {
	switch normalizeProviderName(cfg.Provider, nil) {
	case "espn", "provider":
		return newESPNProvider(cfg)
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to espn", slog.String("provider", cfg.Provider))
		}
		return newESPNProvider(cfg)
	}
}

func newESPNProvider(cfg config.Config) *espn.Client {
	return espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Timeout: cfg.ESPN.Timeout,
	})
}
