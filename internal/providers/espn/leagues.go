package espn

import "scoreboard-relay/internal/domain"

// sportPaths maps leagues onto ESPN's {sport}/{league} path segments.
var sportPaths = map[domain.League]string{
	domain.LeagueMLB: "baseball/mlb",
	domain.LeagueNFL: "football/nfl",
	domain.LeagueNBA: "basketball/nba",
}

// SportPath returns the ESPN path segment for a league.
func SportPath(league domain.League) (string, bool) {
	path, ok := sportPaths[league]
	return path, ok
}
