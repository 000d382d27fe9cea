package testutil

import (
	"fmt"
	"strings"

	"scoreboard-relay/internal/domain"
)

// ESPNEvent renders a single ESPN-shaped event with string scores.
func ESPNEvent(shortName, typeName, shortDetail string, period int) string {
	return fmt.Sprintf(`{"shortName":%q,"status":{"period":%d,"type":{"name":%q,"shortDetail":%q}},`+
		`"competitions":[{"status":{"period":%d,"type":{"name":%q}},"competitors":[`+
		`{"homeAway":"home","score":"1","team":{"abbreviation":"HOM"}},`+
		`{"homeAway":"away","score":"2","team":{"abbreviation":"AWY"}}]}]}`,
		shortName, period, typeName, shortDetail, period, typeName)
}

// ScoreboardJSON wraps rendered events in a scoreboard document.
func ScoreboardJSON(events ...string) []byte {
	return []byte(`{"events":[` + strings.Join(events, ",") + `]}`)
}

// FinalEvents renders n final games titled "<prefix> <i>".
func FinalEvents(prefix string, n int) []byte {
	events := make([]string, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, ESPNEvent(fmt.Sprintf("%s %d", prefix, i), "STATUS_FINAL", "Final", 4))
	}
	return ScoreboardJSON(events...)
}

// SampleGame returns a minimal final game summary with the provided title.
func SampleGame(title string) domain.GameSummary {
	return domain.GameSummary{
		Title:         title,
		ClockOrStatus: "Final",
		Time:          "Final",
		StatusCode:    domain.StatusCodeFinal,
		Teams: [2]domain.TeamScore{
			{Abbreviation: "HOM", Score: "1"},
			{Abbreviation: "AWY", Score: "2"},
		},
	}
}
