package providers

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// UpstreamError reports a failed upstream fetch: transport failure, non-2xx status, or an unparsable body.
// Callers must not assume any partial data accompanies it.
type UpstreamError struct {
	Provider   string
	League     domain.League
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	prefix := e.Provider
	if prefix == "" {
		prefix = "upstream"
	}
	if e.League != "" {
		prefix = fmt.Sprintf("%s %s", prefix, e.League)
	}
	switch {
	case e.StatusCode > 0 && e.Err != nil:
		return fmt.Sprintf("%s: unexpected status %d: %v", prefix, e.StatusCode, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: unexpected status %d", prefix, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return prefix + ": request failed"
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
