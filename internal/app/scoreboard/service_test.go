package scoreboard

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/metrics"
	"scoreboard-relay/internal/providers"
	"scoreboard-relay/internal/store"
	"scoreboard-relay/internal/testutil"
	"scoreboard-relay/internal/transform"
)

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

type mutableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *mutableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mutableClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newService(p providers.ScoreboardProvider, st store.Store, clock *mutableClock, rec *metrics.Recorder) *Service {
	return NewService(p, st,
		WithClock(clock.Now),
		WithLocation(time.UTC),
		WithMetrics(rec),
		WithLogger(nil),
	)
}

func TestScoreboardMissThenHit(t *testing.T) {
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("mlb", 2)}
	clock := &mutableClock{now: fixedNow}
	rec := metrics.NewRecorder()
	svc := newService(p, store.NewMemoryStore(), clock, rec)
	ctx := context.Background()

	first, err := svc.Scoreboard(ctx, domain.LeagueMLB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.CacheHit || len(first.Games) != 2 {
		t.Fatalf("expected fresh fetch with 2 games, got %+v", first)
	}

	clock.Advance(4 * time.Minute)
	second, err := svc.Scoreboard(ctx, domain.LeagueMLB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.CacheHit || len(second.Games) != 2 {
		t.Fatalf("expected cache hit, got %+v", second)
	}
	if p.CallCount() != 1 {
		t.Fatalf("expected one upstream call, got %d", p.CallCount())
	}
	if rec.CacheHits("mlb") != 1 || rec.CacheMisses("mlb") != 1 {
		t.Fatalf("unexpected cache metrics hits=%d misses=%d", rec.CacheHits("mlb"), rec.CacheMisses("mlb"))
	}
}

func TestScoreboardRefetchesAtExpiry(t *testing.T) {
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("nfl", 1)}
	clock := &mutableClock{now: fixedNow}
	svc := newService(p, store.NewMemoryStore(), clock, nil)
	ctx := context.Background()

	if _, err := svc.Scoreboard(ctx, domain.LeagueNFL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.Advance(store.CacheDuration)
	res, err := svc.Scoreboard(ctx, domain.LeagueNFL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CacheHit {
		t.Fatalf("expected miss at exactly the cache duration")
	}
	if p.CallCount() != 2 {
		t.Fatalf("expected two upstream calls, got %d", p.CallCount())
	}
}

func TestScoreboardEmptyResultIsCached(t *testing.T) {
	p := &testutil.ScriptedProvider{Today: testutil.ScoreboardJSON()}
	clock := &mutableClock{now: fixedNow}
	svc := newService(p, store.NewMemoryStore(), clock, nil)

	for i := 0; i < 2; i++ {
		res, err := svc.Scoreboard(context.Background(), domain.LeagueMLB)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Games == nil || len(res.Games) != 0 {
			t.Fatalf("expected empty non-nil games, got %#v", res.Games)
		}
	}
	if p.CallCount() != 1 {
		t.Fatalf("expected empty payload to be served from cache, got %d calls", p.CallCount())
	}
}

func TestScoreboardNBAAppendsYesterday(t *testing.T) {
	p := &testutil.ScriptedProvider{
		Today: testutil.FinalEvents("today", 3),
		Dated: testutil.FinalEvents("yesterday", 2),
	}
	svc := newService(p, store.NewMemoryStore(), &mutableClock{now: fixedNow}, nil)

	res, err := svc.Scoreboard(context.Background(), domain.LeagueNBA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Games) != 5 {
		t.Fatalf("expected 5 games, got %d", len(res.Games))
	}
	want := []string{"today 0", "today 1", "today 2", "yesterday 0", "yesterday 1"}
	for i, title := range want {
		if res.Games[i].Title != title {
			t.Fatalf("game %d: expected %q got %q", i, title, res.Games[i].Title)
		}
	}

	dates := map[string]bool{}
	for _, c := range p.Calls() {
		if c.League != domain.LeagueNBA {
			t.Fatalf("unexpected league %s", c.League)
		}
		dates[c.Date] = true
	}
	if !dates[""] || !dates["20240309"] || len(dates) != 2 {
		t.Fatalf("expected today and 20240309 fetches, got %v", dates)
	}
}

func TestScoreboardNBAYesterdayUsesLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	p := &testutil.ScriptedProvider{Today: testutil.ScoreboardJSON(), Dated: testutil.ScoreboardJSON()}
	// 02:00 UTC on the 10th is still the 9th in New York.
	now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	svc := NewService(p, store.NewMemoryStore(), WithClock(testutil.NowAt(now)), WithLocation(ny))

	if _, err := svc.Scoreboard(context.Background(), domain.LeagueNBA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var dated string
	for _, c := range p.Calls() {
		if c.Date != "" {
			dated = c.Date
		}
	}
	if dated != "20240308" {
		t.Fatalf("expected yesterday 20240308, got %q", dated)
	}
}

func TestScoreboardNBAYesterdayFailureFailsRequest(t *testing.T) {
	st := store.NewMemoryStore()
	p := &testutil.ScriptedProvider{
		Today:    testutil.FinalEvents("today", 1),
		DatedErr: &providers.UpstreamError{Provider: "espn", League: domain.LeagueNBA, StatusCode: 503},
	}
	svc := newService(p, st, &mutableClock{now: fixedNow}, nil)

	_, err := svc.Scoreboard(context.Background(), domain.LeagueNBA)
	if _, ok := providers.AsUpstreamError(err); !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
	entry, _, _ := st.Get(context.Background(), domain.LeagueNBA)
	if entry.Payload != nil || entry.FetchedAt != 0 {
		t.Fatalf("expected store untouched, got %+v", entry)
	}
}

func TestScoreboardFailedRefreshKeepsPreviousEntry(t *testing.T) {
	st := store.NewMemoryStore()
	clock := &mutableClock{now: fixedNow}
	good := &testutil.ScriptedProvider{Today: testutil.FinalEvents("mlb", 1)}
	if _, err := newService(good, st, clock, nil).Scoreboard(context.Background(), domain.LeagueMLB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Force a refresh by expiring the entry, then fail it.
	clock.Advance(store.CacheDuration)
	failing := newService(testutil.ErrProvider{Err: errors.New("boom")}, st, clock, nil)
	if _, err := failing.Scoreboard(context.Background(), domain.LeagueMLB); err == nil {
		t.Fatalf("expected refresh error")
	}

	entry, _, _ := st.Get(context.Background(), domain.LeagueMLB)
	if len(entry.Payload) != 1 || entry.FetchedAt != fixedNow.UnixMilli() {
		t.Fatalf("expected previous entry to survive, got %+v", entry)
	}
}

func TestScoreboardFailureThenCachedEntryWithinWindow(t *testing.T) {
	st := store.NewMemoryStore()
	clock := &mutableClock{now: fixedNow}
	ctx := context.Background()
	if err := st.Set(ctx, domain.LeagueNFL, []domain.GameSummary{testutil.SampleGame("cached")}, fixedNow.UnixMilli()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A miss on a different league fails without disturbing the warm one.
	svc := newService(testutil.UnavailableProvider{}, st, clock, nil)
	if _, err := svc.Scoreboard(ctx, domain.LeagueMLB); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
	res, err := svc.Scoreboard(ctx, domain.LeagueNFL)
	if err != nil || !res.CacheHit || res.Games[0].Title != "cached" {
		t.Fatalf("expected cached nfl entry, got %+v err %v", res, err)
	}
}

func TestScoreboardSchemaErrorDoesNotMutateStore(t *testing.T) {
	st := store.NewMemoryStore()
	p := &testutil.ScriptedProvider{Today: []byte(`{"leagues":[]}`)}
	svc := newService(p, st, &mutableClock{now: fixedNow}, nil)

	_, err := svc.Scoreboard(context.Background(), domain.LeagueNFL)
	if _, ok := transform.AsSchemaError(err); !ok {
		t.Fatalf("expected schema error, got %v", err)
	}
	entry, _, _ := st.Get(context.Background(), domain.LeagueNFL)
	if entry.Payload != nil {
		t.Fatalf("expected empty slot, got %+v", entry)
	}
}

func TestScoreboardConcurrentRequestsAfterWarmup(t *testing.T) {
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("nfl", 2)}
	svc := newService(p, store.NewMemoryStore(), &mutableClock{now: fixedNow}, nil)
	ctx := context.Background()

	if _, err := svc.Scoreboard(ctx, domain.LeagueNFL); err != nil {
		t.Fatalf("warmup: %v", err)
	}
	p.Reset()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Scoreboard(ctx, domain.LeagueNFL)
			if err != nil || !res.CacheHit {
				t.Errorf("expected cache hit, got %+v err %v", res, err)
			}
		}()
	}
	wg.Wait()

	if p.CallCount() != 0 {
		t.Fatalf("expected no upstream calls after warmup, got %d", p.CallCount())
	}
}

func TestScoreboardUnsupportedLeague(t *testing.T) {
	p := &testutil.ScriptedProvider{}
	svc := newService(p, store.NewMemoryStore(), &mutableClock{now: fixedNow}, nil)

	_, err := svc.Scoreboard(context.Background(), domain.League("nhl"))
	if !errors.Is(err, domain.ErrUnsupportedLeague) {
		t.Fatalf("expected unsupported league, got %v", err)
	}
	if p.CallCount() != 0 {
		t.Fatalf("expected no upstream calls")
	}
}

func TestScoreboardNilProvider(t *testing.T) {
	svc := newService(nil, store.NewMemoryStore(), &mutableClock{now: fixedNow}, nil)
	if _, err := svc.Scoreboard(context.Background(), domain.LeagueMLB); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
}

type flakyStore struct {
	*store.MemoryStore
	getErr error
	setErr error
}

func (s *flakyStore) Get(ctx context.Context, league domain.League) (store.Entry, bool, error) {
	if s.getErr != nil {
		return store.Entry{}, false, s.getErr
	}
	return s.MemoryStore.Get(ctx, league)
}

func (s *flakyStore) Set(ctx context.Context, league domain.League, payload []domain.GameSummary, nowMillis int64) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(ctx, league, payload, nowMillis)
}

func TestScoreboardStoreErrorsDegradeToUpstream(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	st := &flakyStore{MemoryStore: store.NewMemoryStore(), getErr: errors.New("read down"), setErr: errors.New("write down")}
	p := &testutil.ScriptedProvider{Today: testutil.FinalEvents("mlb", 1)}
	svc := NewService(p, st, WithClock(testutil.NowAt(fixedNow)), WithLogger(logger))

	res, err := svc.Scoreboard(context.Background(), domain.LeagueMLB)
	if err != nil {
		t.Fatalf("expected payload despite store errors, got %v", err)
	}
	if res.CacheHit || len(res.Games) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	out := buf.String()
	for _, want := range []string{"cache read failed", "cache write failed", "league=mlb"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in logs, got %s", want, out)
		}
	}
}
