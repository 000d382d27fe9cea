package config

import "time"

// ESPNConfig controls how we talk to the ESPN scoreboard API.
type ESPNConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		Timeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
	}
}
