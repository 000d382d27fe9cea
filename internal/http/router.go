package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"scoreboard-relay/internal/http/handlers"
	"scoreboard-relay/internal/http/middleware"
	"scoreboard-relay/internal/http/requestutil"
	"scoreboard-relay/internal/metrics"
)

const corsMaxAgeSeconds = 300

// RouterOptions carries the cross-cutting dependencies of the router.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the relay routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(opts.Logger, opts.Metrics, next)
	})
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{handlers.HeaderCacheHit, requestutil.HeaderRequestID},
		MaxAge:         corsMaxAgeSeconds,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Get("/{league}", handler.League)
	return r
}
