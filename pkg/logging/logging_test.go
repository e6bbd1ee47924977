package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := LevelFromString(tt.in); got != tt.want {
			t.Errorf("LevelFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		nil,
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("widget", "widget-0")

	log.Debug("tick")
	log.Warn("tick dropped")

	if !strings.Contains(a.String(), "msg=tick") || !strings.Contains(a.String(), "tick dropped") {
		t.Errorf("debug handler output = %q", a.String())
	}
	if strings.Contains(b.String(), "msg=tick ") {
		t.Errorf("warn handler received a debug record: %q", b.String())
	}
	if !strings.Contains(b.String(), "widget=widget-0") {
		t.Errorf("attrs not propagated: %q", b.String())
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(debug) = true for an info-only handler")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled(error) = false")
	}
}

func TestMultiHandlerGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewMultiHandler(slog.NewTextHandler(&buf, nil))).WithGroup("sched")
	log.Info("started", "timers", 3)
	if !strings.Contains(buf.String(), "sched.timers=3") {
		t.Errorf("group not applied: %q", buf.String())
	}
}

func TestNewWritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "qflux.log")

	log, closeLog, err := New(Options{
		Level:   slog.LevelDebug,
		Console: &console,
		NoColor: true,
		File:    path,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("widget added", "widget", "widget-1")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if !strings.Contains(console.String(), "widget added") {
		t.Errorf("console output = %q", console.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "widget=widget-1") {
		t.Errorf("file output = %q", data)
	}
}

func TestNewWithoutDestinations(t *testing.T) {
	log, closeLog, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Error("discarded")
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
}
