package testutil

import (
	"context"
	"sync"

	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/providers"
)

// GoodProvider returns the provided body with no error.
type GoodProvider struct {
	Body []byte
}

func (p GoodProvider) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	_ = ctx
	_ = league
	_ = date
	return p.Body, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	return nil, providers.ErrProviderUnavailable
}

// Call records a single provider invocation.
type Call struct {
	League domain.League
	Date   string
}

// ScriptedProvider serves Today for undated calls and Dated for dated ones, recording every call.
// Err, when set, fails every call; DatedErr fails only dated calls.
type ScriptedProvider struct {
	Today    []byte
	Dated    []byte
	Err      error
	DatedErr error

	mu    sync.Mutex
	calls []Call
}

func (p *ScriptedProvider) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	p.mu.Lock()
	p.calls = append(p.calls, Call{League: league, Date: date})
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Err != nil {
		return nil, p.Err
	}
	if date != "" {
		if p.DatedErr != nil {
			return nil, p.DatedErr
		}
		return p.Dated, nil
	}
	return p.Today, nil
}

// Calls returns a copy of the recorded invocations.
func (p *ScriptedProvider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Call, len(p.calls))
	copy(out, p.calls)
	return out
}

// CallCount returns how many times the provider was invoked.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// Reset forgets recorded calls.
func (p *ScriptedProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = nil
}
