package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoreboard-relay/internal/app/scoreboard"
	"scoreboard-relay/internal/http/handlers"
	"scoreboard-relay/internal/store"
	"scoreboard-relay/internal/testutil"
)

func newRouter(t *testing.T, p *testutil.ScriptedProvider, origins []string) http.Handler {
	t.Helper()
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := scoreboard.NewService(p, store.NewMemoryStore(), scoreboard.WithClock(testutil.NowAt(now)))
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(svc, logger, "scoreboard-relay")
	return NewRouter(h, RouterOptions{Logger: logger, CORSOrigins: origins})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	p := &testutil.ScriptedProvider{
		Today: testutil.FinalEvents("today", 1),
		Dated: testutil.FinalEvents("yesterday", 1),
	}
	router := newRouter(t, p, []string{"*"})

	cases := map[string]int{
		"/":       http.StatusOK,
		"/health": http.StatusOK,
		"/mlb":    http.StatusOK,
		"/nfl":    http.StatusOK,
		"/nba":    http.StatusOK,
		"/nhl":    http.StatusNotFound,
		"/a/b":    http.StatusNotFound,
	}
	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s missing X-Request-ID", path)
		}
	}
}

func TestRouterCacheHitHeaderAcrossRequests(t *testing.T) {
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("g", 2)}
	router := newRouter(t, p, []string{"*"})

	first := testutil.Serve(router, http.MethodGet, "/nfl", nil)
	second := testutil.Serve(router, http.MethodGet, "/nfl", nil)

	if first.Header().Get("X-Cache-Hit") != "false" || second.Header().Get("X-Cache-Hit") != "true" {
		t.Fatalf("expected miss then hit, got %s then %s",
			first.Header().Get("X-Cache-Hit"), second.Header().Get("X-Cache-Hit"))
	}
	if p.CallCount() != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", p.CallCount())
	}
}

func TestRouterRejectsNonGET(t *testing.T) {
	router := newRouter(t, &testutil.ScriptedProvider{}, []string{"*"})
	rr := testutil.Serve(router, http.MethodPost, "/mlb", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterCORSExposesHeaders(t *testing.T) {
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("g", 1)}
	router := newRouter(t, p, []string{"https://scores.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/mlb", nil)
	req.Header.Set("Origin", "https://scores.example.com")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://scores.example.com" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
	exposed := rr.Header().Get("Access-Control-Expose-Headers")
	if exposed == "" {
		t.Fatalf("expected exposed headers")
	}
	for _, h := range []string{"X-Cache-Hit", "X-Request-Id"} {
		if !containsFold(exposed, h) {
			t.Fatalf("expected %s exposed, got %s", h, exposed)
		}
	}
}

func TestRouterRecoversFromPanics(t *testing.T) {
	router := NewRouter(handlers.NewHandler(panicService{}, nil, "svc"), RouterOptions{CORSOrigins: []string{"*"}})
	rr := testutil.Serve(router, http.MethodGet, "/mlb", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}
