package providers

import (
	"context"

	"scoreboard-relay/internal/domain"
)

// ScoreboardProvider fetches the raw scoreboard payload for a league.
// The date parameter, when provided, is a YYYYMMDD string selecting that day's games;
// an empty date asks for whatever the upstream considers "today".
// Implementations return the body verbatim and never partially.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error)
}

// ProviderFunc adapts a function to ScoreboardProvider.
type ProviderFunc func(ctx context.Context, league domain.League, date string) ([]byte, error)

func (f ProviderFunc) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	return f(ctx, league, date)
}
