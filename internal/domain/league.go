package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// League identifies one of the supported competitions.
type League string

const (
	LeagueMLB League = "mlb"
	LeagueNFL League = "nfl"
	LeagueNBA League = "nba"
)

// ErrUnsupportedLeague is returned when a route segment does not name a known league.
var ErrUnsupportedLeague = errors.New("unsupported league")

// Leagues lists every supported league in route order.
func Leagues() []League {
	return []League{LeagueMLB, LeagueNFL, LeagueNBA}
}

// ParseLeague maps a route segment to a League, ignoring case and surrounding space.
func ParseLeague(raw string) (League, error) {
	candidate := League(strings.ToLower(strings.TrimSpace(raw)))
	for _, l := range Leagues() {
		if l == candidate {
			return l, nil
		}
	}
	return "", errors.Wrapf(ErrUnsupportedLeague, "league %q", raw)
}

func (l League) String() string {
	return string(l)
}
