package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"etude/internal/services"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.input); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestConsoleHandlerHoistsComponent(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.With(String(FieldComponent, "scheduler")).Info("next measure",
		Int64(FieldSongID, 3),
		String("measure", "5"),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO scheduler: next measure") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "song_id=3") || !strings.Contains(line, "measure=5") {
		t.Fatalf("missing attributes in line: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be hoisted out of attributes: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("scan", String("title", "Clair de Lune"))

	if !strings.Contains(buf.String(), `title="Clair de Lune"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	ctx := services.WithSongID(context.Background(), 7)
	ctx = services.WithRequestID(ctx, "req-1")
	WithContext(ctx, logger).Info("hello")

	line := buf.String()
	if !strings.Contains(line, "song_id=7") || !strings.Contains(line, "correlation_id=req-1") {
		t.Fatalf("context fields missing: %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
