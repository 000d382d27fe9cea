// Package scoreboard serves per-league game summaries from the cache, refreshing from the provider when stale.
package scoreboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/logging"
	"scoreboard-relay/internal/metrics"
	"scoreboard-relay/internal/providers"
	"scoreboard-relay/internal/store"
	"scoreboard-relay/internal/timeutil"
	"scoreboard-relay/internal/transform"
)

// Result is the outcome of a scoreboard lookup.
type Result struct {
	Games    []domain.GameSummary
	CacheHit bool
}

// Service coordinates cache lookups, upstream refreshes, and transforms.
type Service struct {
	provider providers.ScoreboardProvider
	store    store.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	location *time.Location
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the fallback logger used when the request context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics records cache hits and misses.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = recorder }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the timezone used to compute "yesterday".
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewService constructs a Service over the provided upstream and cache.
func NewService(provider providers.ScoreboardProvider, st store.Store, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		store:    st,
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scoreboard returns the league's games, from cache when fresh.
// A failed refresh returns the error and leaves the cached entry untouched.
func (s *Service) Scoreboard(ctx context.Context, league domain.League) (Result, error) {
	policy, ok := transform.PolicyFor(league)
	if !ok {
		return Result{}, errors.Wrapf(domain.ErrUnsupportedLeague, "scoreboard: league %q", league)
	}
	logger := logging.FromContext(ctx, s.logger)
	now := s.now()
	nowMillis := timeutil.EpochMillis(now)

	entry, _, err := s.store.Get(ctx, league)
	if err != nil {
		logging.Error(logger, "cache read failed", err, logging.FieldLeague, league.String())
	} else if store.Fresh(entry, nowMillis) {
		s.metrics.RecordCacheLookup(league.String(), true)
		return Result{Games: entry.Payload, CacheHit: true}, nil
	}
	s.metrics.RecordCacheLookup(league.String(), false)

	games, err := s.refresh(ctx, policy, now)
	if err != nil {
		return Result{}, err
	}

	if err := s.store.Set(ctx, league, games, nowMillis); err != nil {
		logging.Error(logger, "cache write failed", err, logging.FieldLeague, league.String())
	}
	logging.Debug(logger, "scoreboard refreshed",
		logging.FieldLeague, league.String(),
		logging.FieldCount, len(games),
	)
	return Result{Games: games, CacheHit: false}, nil
}

func (s *Service) refresh(ctx context.Context, policy transform.Policy, now time.Time) ([]domain.GameSummary, error) {
	dates := []string{""}
	if policy.IncludeYesterday {
		dates = append(dates, timeutil.Yesterday(now, s.location))
	}
	if len(dates) == 1 {
		return s.fetch(ctx, policy, dates[0])
	}

	batches := make([][]domain.GameSummary, len(dates))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, date := range dates {
		p.Go(func(ctx context.Context) error {
			games, err := s.fetch(ctx, policy, date)
			if err != nil {
				return err
			}
			batches[i] = games
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, b := range batches {
		total += len(b)
	}
	out := make([]domain.GameSummary, 0, total)
	for _, b := range batches {
		out = append(out, b...)
	}
	return out, nil
}

func (s *Service) fetch(ctx context.Context, policy transform.Policy, date string) ([]domain.GameSummary, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	raw, err := s.provider.FetchScoreboard(ctx, policy.League, date)
	if err != nil {
		return nil, err
	}
	return transform.Apply(policy, raw)
}
