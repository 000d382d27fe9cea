package domain

// Status codes shared by every league.
const (
	StatusCodeFinal     = "F"
	StatusCodeScheduled = "PRE"
)

// TeamScore pairs a team abbreviation with the score exactly as upstream sent it.
// Score is a string or a number depending on the provider payload and is never coerced.
type TeamScore struct {
	Abbreviation string `json:"abbreviation"`
	Score        any    `json:"score"`
}

// GameSummary is the compact game shape served to clients.
type GameSummary struct {
	Title         string       `json:"title"`
	ClockOrStatus string       `json:"clockOrStatus"`
	Time          string       `json:"time"`
	Teams         [2]TeamScore `json:"teams"`
	StatusCode    string       `json:"statusCode"`
	StatusDetail  string       `json:"statusDetail,omitempty"`
}

// CloneGames returns a shallow copy of games, preserving nil.
func CloneGames(games []GameSummary) []GameSummary {
	if games == nil {
		return nil
	}
	out := make([]GameSummary, len(games))
	copy(out, games)
	return out
}
