package store

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
)

// MemoryStore keeps one thread-safe entry per league for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[domain.League]Entry
}

// NewMemoryStore constructs a MemoryStore with an empty slot for every supported league.
func NewMemoryStore() *MemoryStore {
	entries := make(map[domain.League]Entry, len(domain.Leagues()))
	for _, l := range domain.Leagues() {
		entries[l] = emptyEntry(l)
	}
	return &MemoryStore{entries: entries}
}

// Get returns a copy of the league's entry.
func (s *MemoryStore) Get(_ context.Context, league domain.League) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[league]
	if !ok {
		return Entry{}, false, nil
	}
	e.Payload = domain.CloneGames(e.Payload)
	return e, true, nil
}

// Set replaces the league's entry with a copy of payload.
func (s *MemoryStore) Set(_ context.Context, league domain.League, payload []domain.GameSummary, nowMillis int64) error {
	if !supported(league) {
		return errors.Wrapf(domain.ErrUnsupportedLeague, "store: league %q", league)
	}
	if payload == nil {
		payload = []domain.GameSummary{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[league] = Entry{
		League:    league,
		Payload:   domain.CloneGames(payload),
		FetchedAt: nowMillis,
	}
	return nil
}

// IsFresh reports whether the league's entry can be served without a refresh.
func (s *MemoryStore) IsFresh(ctx context.Context, league domain.League, nowMillis int64) (bool, error) {
	e, ok, err := s.Get(ctx, league)
	if err != nil || !ok {
		return false, err
	}
	return Fresh(e, nowMillis), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
