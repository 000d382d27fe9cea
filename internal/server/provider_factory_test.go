package server

import (
	"testing"

	"scoreboard-relay/internal/config"
	"scoreboard-relay/internal/providers/espn"
	"scoreboard-relay/internal/providers/fixture"
	"scoreboard-relay/internal/testutil"
)

func TestProviderFactoryBuildsInstrumentedProvider(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, ok := prov.(*fixture.Provider); ok {
		t.Fatalf("expected fixture provider to be wrapped")
	}
}

func TestSelectProvider(t *testing.T) {
	cases := []struct {
		name     string
		provider string
		wantESPN bool
	}{
		{name: "default", provider: "", wantESPN: true},
		{name: "espn", provider: "ESPN", wantESPN: true},
		{name: "fixture", provider: "fixture", wantESPN: false},
		{name: "unknown falls back", provider: "unknown", wantESPN: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, _ := testutil.NewBufferLogger()
			prov := selectProvider(config.Config{Provider: tc.provider}, logger)
			_, isESPN := prov.(*espn.Client)
			if isESPN != tc.wantESPN {
				t.Fatalf("provider %q: got %T", tc.provider, prov)
			}
		})
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" ESPN ", nil); got != "espn" {
		t.Fatalf("expected trimmed lower-case name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic fallback, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
}
