package transform

import (
	"fmt"
	"regexp"
	"strings"

	"scoreboard-relay/internal/domain"
)

// Policy holds the per-league rules layered on top of the shared pipeline.
type Policy struct {
	League domain.League
	// LiveLabel derives the status code for games that are neither final nor scheduled.
	LiveLabel func(time string, period int) string
	// Detail derives the optional statusDetail field. Nil leaves it empty.
	Detail func(statusCode, shortDetail string) string
	// IncludeYesterday asks the caller to append the previous day's games.
	IncludeYesterday bool
}

var policies = map[domain.League]Policy{
	domain.LeagueMLB: {
		League:    domain.LeagueMLB,
		LiveLabel: timeLabel,
		Detail:    func(statusCode, _ string) string { return statusCode },
	},
	domain.LeagueNFL: {
		League:    domain.LeagueNFL,
		LiveLabel: quarterLabel,
		Detail:    func(_, shortDetail string) string { return compactDetail(shortDetail) },
	},
	domain.LeagueNBA: {
		League:           domain.LeagueNBA,
		LiveLabel:        quarterLabel,
		IncludeYesterday: true,
	},
}

// PolicyFor returns the shaping policy registered for league.
func PolicyFor(league domain.League) (Policy, bool) {
	p, ok := policies[league]
	return p, ok
}

func quarterLabel(_ string, period int) string {
	return fmt.Sprintf("Q%d", period)
}

func timeLabel(time string, _ int) string {
	return time
}

var meridiemPattern = regexp.MustCompile(`(:00)?\s([AP]M)`)

// compactDetail shortens "10/20 - 1:00 PM EDT" to "10/20 1PM EDT".
// Only the first meridiem and the first separator are touched.
func compactDetail(detail string) string {
	detail = replaceFirstMatch(meridiemPattern, detail, "$2")
	return strings.Replace(detail, statusSeparator, " ", 1)
}

func replaceFirstMatch(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	expanded := re.ExpandString(nil, template, s, loc)
	return s[:loc[0]] + string(expanded) + s[loc[1]:]
}
