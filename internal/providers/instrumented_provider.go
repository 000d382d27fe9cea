package providers

import (
	"context"
	"log/slog"
	"time"

	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/logging"
	"scoreboard-relay/internal/metrics"
)

// instrumentedProvider wraps a ScoreboardProvider with metrics and failure logging.
// It makes exactly one call per fetch; failures are surfaced to the caller unchanged.
type instrumentedProvider struct {
	inner   ScoreboardProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner so each fetch is timed and recorded under name.
func NewInstrumentedProvider(inner ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) ScoreboardProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	if p.inner == nil {
		p.logWarn(ctx, "provider unavailable", slog.String(logging.FieldLeague, league.String()))
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	body, err := p.inner.FetchScoreboard(ctx, league, date)
	elapsed := p.now().Sub(start)

	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
	}

	if err != nil {
		p.logWarn(ctx, "provider fetch failed",
			slog.String(logging.FieldLeague, league.String()),
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("err", err),
		)
		return nil, err
	}

	logWithProvider(ctx, logging.FromContext(ctx, p.logger), slog.LevelDebug, p.name, "provider fetch complete",
		slog.String(logging.FieldLeague, league.String()),
		slog.String(logging.FieldDate, date),
		slog.Int("bytes", len(body)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return body, nil
}

func (p *instrumentedProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logWithProvider(ctx, logging.FromContext(ctx, p.logger), slog.LevelWarn, p.name, msg, args...)
}
