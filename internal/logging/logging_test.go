package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_StackTraceOnError(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "INFO")

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be filtered, got %s", buf.String())
	}

	logger.Error("boom", "component", "test")
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log record: %v", err)
	}
	if record["msg"] != "boom" || record["component"] != "test" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["stacktrace"]; !ok {
		t.Fatalf("expected stacktrace attribute on error record")
	}

	buf.Reset()
	logger.With("scope", "child").Info("fine")
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log record: %v", err)
	}
	if record["scope"] != "child" {
		t.Fatalf("expected attrs to propagate, got %v", record)
	}
}
