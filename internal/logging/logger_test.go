package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerJSONIncludesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Level: "debug", Service: "scoreboard-relay", Version: "v1", Output: &buf})

	logger.Debug("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if line[FieldService] != "scoreboard-relay" || line[FieldVersion] != "v1" {
		t.Fatalf("expected service/version attrs, got %v", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("expected %s for %q, got %s", want, raw, got)
		}
	}
}

func TestFromContextPrefersStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	stored := slog.New(slog.NewTextHandler(&buf, nil))
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithLogger(context.Background(), stored)
	FromContext(ctx, fallback).Info("scoped")

	if !strings.Contains(buf.String(), "scoped") {
		t.Fatalf("expected stored logger to be used")
	}
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback without stored logger")
	}
	if got := WithLogger(context.Background(), nil); FromContext(got, fallback) != fallback {
		t.Fatalf("expected nil logger to be ignored")
	}
}
