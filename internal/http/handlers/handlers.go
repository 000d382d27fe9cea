package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"scoreboard-relay/internal/app/scoreboard"
	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/logging"
	"scoreboard-relay/internal/providers"
	"scoreboard-relay/internal/transform"
)

// HeaderCacheHit tells clients whether the payload came from the cache.
const HeaderCacheHit = "X-Cache-Hit"

const fetchErrorMessage = "Error fetching data"

// ScoreboardService is the slice of the scoreboard service the handlers depend on.
type ScoreboardService interface {
	Scoreboard(ctx context.Context, league domain.League) (scoreboard.Result, error)
}

// Handler wires HTTP routes to the scoreboard service.
type Handler struct {
	svc     ScoreboardService
	logger  *slog.Logger
	service string
}

// NewHandler constructs a Handler. service names the relay in the root payload.
func NewHandler(svc ScoreboardService, logger *slog.Logger, service string) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		service: service,
	}
}

type rootResponse struct {
	Service string          `json:"service"`
	Leagues []domain.League `json:"leagues"`
}

// Root is a static liveness payload listing the supported leagues.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, rootResponse{Service: h.service, Leagues: domain.Leagues()}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// League serves the compact scoreboard for the {league} path segment.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	league, err := domain.ParseLeague(chi.URLParam(r, "league"))
	if err != nil {
		writeError(w, nethttp.StatusNotFound, domain.ErrUnsupportedLeague.Error(), h.logger)
		return
	}

	res, err := h.svc.Scoreboard(r.Context(), league)
	if err != nil {
		logging.Error(logger, "scoreboard fetch failed", err,
			logging.FieldLeague, league.String(),
			logging.FieldErrorKind, errorKind(err),
		)
		writeJSON(w, nethttp.StatusInternalServerError, fetchErrorBody{
			Message: fetchErrorMessage,
			Error:   err.Error(),
		}, h.logger)
		return
	}

	games := res.Games
	if games == nil {
		games = []domain.GameSummary{}
	}
	logging.Info(logger, "served scoreboard",
		logging.FieldLeague, league.String(),
		logging.FieldCacheHit, res.CacheHit,
		logging.FieldCount, len(games),
	)
	w.Header().Set(HeaderCacheHit, strconv.FormatBool(res.CacheHit))
	writeJSON(w, nethttp.StatusOK, games, h.logger)
}

// NotFound answers unknown paths.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers non-GET requests on known paths.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func errorKind(err error) string {
	if _, ok := transform.AsSchemaError(err); ok {
		return "schema"
	}
	if _, ok := providers.AsUpstreamError(err); ok || errors.Is(err, providers.ErrProviderUnavailable) {
		return "upstream"
	}
	return "internal"
}
