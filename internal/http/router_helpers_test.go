package http

import (
	"context"
	"strings"

	"scoreboard-relay/internal/app/scoreboard"
	"scoreboard-relay/internal/domain"
)

type panicService struct{}

func (panicService) Scoreboard(context.Context, domain.League) (scoreboard.Result, error) {
	panic("boom")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
