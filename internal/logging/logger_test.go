// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer for the duration of the test.
func captureGlobal(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("no log output")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	buf := captureGlobal(t, "warn")

	Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %s", buf.String())
	}

	Warn().Str("space", "user").Msg("visible")
	m := decodeLine(t, buf)
	if m["message"] != "visible" || m["space"] != "user" || m["level"] != "warn" || m["service"] != ServiceName {
		t.Errorf("unexpected log line: %v", m)
	}
}

func TestCtx_AddsContextFields(t *testing.T) {
	buf := captureGlobal(t, "info")

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	Ctx(ctx).Info().Msg("with ids")

	m := decodeLine(t, buf)
	if m["request_id"] != "req-1" || m["correlation_id"] != "corr-1" {
		t.Errorf("context fields missing: %v", m)
	}

	buf.Reset()
	Ctx(context.Background()).Info().Msg("without ids")
	m = decodeLine(t, buf)
	if _, ok := m["request_id"]; ok {
		t.Errorf("unexpected request_id: %v", m)
	}
}

func TestGeneratedIDs(t *testing.T) {
	if got := GenerateCorrelationID(); len(got) != 8 {
		t.Errorf("GenerateCorrelationID() length = %d, want 8", len(got))
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("GenerateRequestID() returned duplicate ids")
	}
	ctx := ContextWithNewCorrelationID(context.Background())
	if CorrelationIDFromContext(ctx) == "" {
		t.Error("ContextWithNewCorrelationID() did not set an id")
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("RequestIDFromContext() on empty context should be empty")
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t, "info")

	l := WithComponent("recommend")
	l.Info().Msg("hello")

	if m := decodeLine(t, buf); m["component"] != "recommend" {
		t.Errorf("component = %v, want recommend", m["component"])
	}
}

func TestAdminAuditLogger(t *testing.T) {
	var buf bytes.Buffer
	audit := NewAdminAuditLogger(NewTestLogger(&buf))

	audit.LogAccessDenied("eyJhbGciOiJIUzI1NiJ9.payload.signature", "expired", "POST", "/api/v1/admin/reload", "10.0.0.1")
	m := decodeLine(t, &buf)
	if m["status"] != "failed" || m["reason"] != "expired" || m["component"] != "admin_audit" {
		t.Errorf("unexpected audit line: %v", m)
	}
	if tok, _ := m["token"].(string); tok != "eyJh...ture" {
		t.Errorf("token = %q, want masked", tok)
	}

	buf.Reset()
	audit.LogReload("admin", true)
	if m := decodeLine(t, &buf); m["event"] != "snapshot_reload" || m["accepted"] != true {
		t.Errorf("unexpected reload line: %v", m)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"short", "***"},
		{"abcdefghijklmnop", "abcd...mnop"},
	}
	for _, tt := range tests {
		if got := SanitizeToken(tt.in); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
