// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// =============================================================================
// Level Tests
// =============================================================================

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.level.String()
			if got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_toSlogLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{Level(99), slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got := tt.level.toSlogLevel()
			if got != tt.want {
				t.Errorf("toSlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{" error ", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Logger Tests
// =============================================================================

func TestNew_Defaults(t *testing.T) {
	logger := New(Config{})
	defer logger.Close()

	if logger.Slog() == nil {
		t.Fatal("Slog() returned nil")
	}
	if logger.file != nil {
		t.Error("file logging enabled without LogDir")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	defer logger.Close()

	if logger.config.Service != "countdown" {
		t.Errorf("default service = %q, want countdown", logger.config.Service)
	}
}

func TestNew_FileLogging(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelDebug,
		LogDir:  dir,
		Service: "test",
		Quiet:   true,
	})

	logger.Info("file message", "key", "value")
	logger.Debug("debug message")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	filename := "test_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "file message") {
		t.Errorf("log file missing info message: %s", content)
	}
	if !strings.Contains(content, "debug message") {
		t.Errorf("log file missing debug message: %s", content)
	}
	if !strings.Contains(content, `"service":"test"`) {
		t.Errorf("log file missing service attribute: %s", content)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  dir,
		Service: "filter",
		Quiet:   true,
	})

	logger.Info("filtered out")
	logger.Warn("kept")
	logger.Close()

	filename := "filter_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if strings.Contains(content, "filtered out") {
		t.Error("info message leaked past warn level")
	}
	if !strings.Contains(content, "kept") {
		t.Error("warn message missing")
	}
}

func TestWith_ChildDoesNotOwnFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{LogDir: dir, Service: "parent", Quiet: true})

	child := logger.With("run", "abc")
	if child.file != nil {
		t.Error("child logger owns the file handle")
	}
	if err := child.Close(); err != nil {
		t.Errorf("child Close() error: %v", err)
	}

	// The parent's handle is still open and writable.
	logger.Info("after child close")
	if err := logger.Close(); err != nil {
		t.Errorf("parent Close() error: %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	logger := New(Config{LogDir: t.TempDir(), Quiet: true})

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	logger := New(Config{LogDir: t.TempDir(), Service: "conc", Quiet: true})
	defer logger.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("concurrent", "goroutine", n)
		}(i)
	}
	wg.Wait()
}

// =============================================================================
// multiHandler Tests
// =============================================================================

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	}}
	logger := slog.New(h)

	logger.Info("both places", "k", "v")

	if !strings.Contains(a.String(), "both places") {
		t.Error("text handler missed the record")
	}
	if !strings.Contains(b.String(), "both places") {
		t.Error("json handler missed the record")
	}
}

func TestMultiHandler_EnabledRespectsLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(info) = true with only an error-level handler")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Enabled(error) = false")
	}
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{slog.NewJSONHandler(&buf, nil)}}
	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("svc", "x")}))

	logger.Info("attributed")

	if !strings.Contains(buf.String(), `"svc":"x"`) {
		t.Errorf("missing attr: %s", buf.String())
	}
}

// =============================================================================
// expandPath Tests
// =============================================================================

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/logs", filepath.Join(home, "logs")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := expandPath(tt.input)
			if got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
