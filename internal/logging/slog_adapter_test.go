// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.Warn("service restarted",
		slog.String("service", "refresh"),
		slog.Int("failures", 2),
		slog.Duration("backoff", 15*time.Second),
		slog.Any("error", errors.New("boom")),
	)

	m := decodeLine(t, &buf)
	if m["level"] != "warn" || m["message"] != "service restarted" {
		t.Errorf("unexpected line: %v", m)
	}
	if m["service"] != "refresh" || m["failures"] != float64(2) || m["error"] != "boom" {
		t.Errorf("attributes missing: %v", m)
	}
}

func TestSlogHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf))).
		WithGroup("event").
		With(slog.String("tree", "animerec"))

	logger.Info("x", slog.String("type", "stop"), slog.Group("svc", slog.String("name", "http")))

	m := decodeLine(t, &buf)
	if m["event.tree"] != "animerec" {
		t.Errorf("event.tree = %v", m["event.tree"])
	}
	if m["event.type"] != "stop" {
		t.Errorf("event.type = %v", m["event.type"])
	}
	if m["event.svc.name"] != "http" {
		t.Errorf("event.svc.name = %v", m["event.svc.name"])
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
