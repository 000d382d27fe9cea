package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "scoreboard-relay/1.0"
	// Scoreboard payloads are a few hundred KB on busy days.
	maxBodyBytes = 8 << 20
	// Number of bytes of an error body kept in UpstreamError messages.
	errorBodySnippet = 512
)
