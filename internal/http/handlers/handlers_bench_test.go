package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoreboard-relay/internal/app/scoreboard"
	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/store"
	"scoreboard-relay/internal/testutil"
)

func BenchmarkLeagueCacheHit(b *testing.B) {
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("bench", 15)}
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	svc := scoreboard.NewService(p, store.NewMemoryStore(), scoreboard.WithClock(testutil.NowAt(now)))
	router := newTestRouter(NewHandler(svc, nil, "bench"))

	// Warm the cache so the loop measures the hit path.
	testutil.Serve(router, http.MethodGet, "/"+domain.LeagueMLB.String(), nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/mlb", nil)
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rr.Code)
		}
	}
}
