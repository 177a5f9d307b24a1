package logging

import (
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewSlog_WritesThroughZapCore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := NewSlog(FromZap(zap.New(core)))

	logger.Info("publish finished", "event_id", "ev-1", "rows", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "publish finished" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["event_id"] != "ev-1" {
		t.Fatalf("unexpected event_id field: %v", fields["event_id"])
	}
}

func TestNewSlog_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := NewSlog(FromZap(zap.New(core)))

	logger.Info("dropped")
	logger.Warn("kept")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "kept" {
		t.Fatalf("expected only the warn entry, got %v", entries)
	}
}

func TestNewSlog_GroupsPrefixKeys(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := NewSlog(FromZap(zap.New(core))).WithGroup("http").With("method", "GET")

	logger.Info("request handled")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["http.method"] != "GET" {
		t.Fatalf("expected grouped key http.method, got %v", fields)
	}
}

func TestSlogLevel(t *testing.T) {
	if SlogLevel(LevelDebug) != slog.LevelDebug {
		t.Fatalf("debug mapping")
	}
	if SlogLevel(LevelInfo) != slog.LevelInfo {
		t.Fatalf("info mapping")
	}
	if SlogLevel(LevelWarn) != slog.LevelWarn {
		t.Fatalf("warn mapping")
	}
	if SlogLevel(LevelError) != slog.LevelError {
		t.Fatalf("error mapping")
	}
}
