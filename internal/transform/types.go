package transform

// scoreboardResponse is the subset of the ESPN scoreboard document the relay consumes.
// Events is a pointer so that a missing or null field can be told apart from an empty list.
type scoreboardResponse struct {
	Events *[]rawEvent `json:"events" validate:"required"`
}

type rawEvent struct {
	ShortName    string           `json:"shortName"`
	Status       *rawEventStatus  `json:"status" validate:"required"`
	Competitions []rawCompetition `json:"competitions" validate:"required,min=1"`
}

type rawEventStatus struct {
	Period int           `json:"period"`
	Type   rawStatusType `json:"type"`
}

type rawStatusType struct {
	Name        string `json:"name"`
	ShortDetail string `json:"shortDetail"`
}

type rawCompetition struct {
	Status      *rawEventStatus `json:"status" validate:"required"`
	Competitors []rawCompetitor `json:"competitors" validate:"len=2,dive"`
}

type rawCompetitor struct {
	HomeAway string   `json:"homeAway"`
	Score    any      `json:"score"`
	Team     *rawTeam `json:"team" validate:"required"`
}

type rawTeam struct {
	Abbreviation string `json:"abbreviation" validate:"required"`
}
