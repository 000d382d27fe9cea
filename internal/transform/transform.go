// Package transform reshapes raw ESPN scoreboard documents into compact game summaries.
package transform

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
)

const (
	statusSeparator = " - "

	statusTypeFinal     = "STATUS_FINAL"
	statusTypeScheduled = "STATUS_SCHEDULED"
)

// Transform decodes raw and applies the policy registered for league.
// Identical input always yields identical output. An empty events list yields an empty, non-nil slice.
func Transform(league domain.League, raw []byte) ([]domain.GameSummary, error) {
	policy, ok := PolicyFor(league)
	if !ok {
		return nil, errors.Wrapf(domain.ErrUnsupportedLeague, "transform: league %q", league)
	}
	return Apply(policy, raw)
}

// TransformMLB shapes an MLB scoreboard.
func TransformMLB(raw []byte) ([]domain.GameSummary, error) {
	return Transform(domain.LeagueMLB, raw)
}

// TransformNFL shapes an NFL scoreboard.
func TransformNFL(raw []byte) ([]domain.GameSummary, error) {
	return Transform(domain.LeagueNFL, raw)
}

// TransformNBA shapes an NBA scoreboard for a single date.
func TransformNBA(raw []byte) ([]domain.GameSummary, error) {
	return Transform(domain.LeagueNBA, raw)
}

// Apply runs the shared pipeline with an explicit policy.
func Apply(policy Policy, raw []byte) ([]domain.GameSummary, error) {
	var doc scoreboardResponse
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, &SchemaError{League: policy.League, Event: payloadLevel, Reason: "decode body", Err: err}
	}
	if err := validate.Struct(doc); err != nil {
		return nil, &SchemaError{League: policy.League, Event: payloadLevel, Reason: "events missing", Err: err}
	}

	events := *doc.Events
	out := make([]domain.GameSummary, 0, len(events))
	for i, ev := range events {
		if err := validateEvent(ev); err != nil {
			return nil, &SchemaError{League: policy.League, Event: i, Reason: describe(err), Err: err}
		}
		out = append(out, summarize(policy, ev))
	}
	return out, nil
}

func validateEvent(ev rawEvent) error {
	if err := validate.Struct(ev); err != nil {
		return err
	}
	return validate.Struct(ev.Competitions[0])
}

func summarize(policy Policy, ev rawEvent) domain.GameSummary {
	comp := ev.Competitions[0]
	detail := ev.Status.Type.ShortDetail
	clock := splitTime(detail)

	summary := domain.GameSummary{
		Title:         ev.ShortName,
		ClockOrStatus: detail,
		Time:          clock,
		Teams: [2]domain.TeamScore{
			teamScore(comp.Competitors[0]),
			teamScore(comp.Competitors[1]),
		},
		StatusCode: statusCode(policy, comp.Status, clock),
	}
	if policy.Detail != nil {
		summary.StatusDetail = policy.Detail(summary.StatusCode, detail)
	}
	return summary
}

// splitTime keeps the part after the first separator, or the whole string when there is none.
func splitTime(detail string) string {
	parts := strings.Split(detail, statusSeparator)
	if len(parts) < 2 {
		return detail
	}
	return strings.Replace(parts[1], " PM", "PM", 1)
}

func statusCode(policy Policy, status *rawEventStatus, clock string) string {
	switch status.Type.Name {
	case statusTypeFinal:
		return domain.StatusCodeFinal
	case statusTypeScheduled:
		return domain.StatusCodeScheduled
	default:
		return policy.LiveLabel(clock, status.Period)
	}
}

func teamScore(c rawCompetitor) domain.TeamScore {
	return domain.TeamScore{Abbreviation: c.Team.Abbreviation, Score: c.Score}
}
