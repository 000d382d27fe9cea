// Package store holds the per-league scoreboard cache.
package store

import (
	"context"
	"time"

	"scoreboard-relay/internal/domain"
)

// CacheDuration is how long a refreshed payload is served before the next upstream fetch.
const CacheDuration = 5 * time.Minute

var cacheDurationMillis = CacheDuration.Milliseconds()

// Entry is the cached state of a single league. A nil Payload marks a slot that has never been filled.
type Entry struct {
	League    domain.League        `json:"league"`
	Payload   []domain.GameSummary `json:"payload"`
	FetchedAt int64                `json:"fetchedAt"`
}

// Store is the cache contract used by the scoreboard service.
// Set replaces an entry wholesale; concurrent refreshes are last-write-wins.
type Store interface {
	Get(ctx context.Context, league domain.League) (Entry, bool, error)
	Set(ctx context.Context, league domain.League, payload []domain.GameSummary, nowMillis int64) error
	IsFresh(ctx context.Context, league domain.League, nowMillis int64) (bool, error)
	Close() error
}

// Fresh reports whether e holds a payload fetched less than CacheDuration before nowMillis.
func Fresh(e Entry, nowMillis int64) bool {
	if e.Payload == nil || e.FetchedAt <= 0 {
		return false
	}
	return nowMillis-e.FetchedAt < cacheDurationMillis
}

func emptyEntry(league domain.League) Entry {
	return Entry{League: league}
}

func supported(league domain.League) bool {
	for _, l := range domain.Leagues() {
		if l == league {
			return true
		}
	}
	return false
}
