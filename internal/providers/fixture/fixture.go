package fixture

import (
	"context"
	"embed"

	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
)

//go:embed data/*.json
var payloads embed.FS

// Provider returns static ESPN-shaped scoreboards useful for local testing and bootstrapping.
type Provider struct {
	fs embed.FS
}

// New creates a fixture provider backed by the embedded payloads.
func New() *Provider {
	return &Provider{fs: payloads}
}

// FetchScoreboard returns the embedded payload for the league.
// Any non-empty date selects the "previous day" payload when one exists.
func (p *Provider) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if date != "" {
		if body, err := p.fs.ReadFile("data/" + league.String() + "_previous.json"); err == nil {
			return body, nil
		}
	}
	body, err := p.fs.ReadFile("data/" + league.String() + ".json")
	if err != nil {
		return nil, errors.Wrapf(domain.ErrUnsupportedLeague, "fixture: league %q", league)
	}
	return body, nil
}
