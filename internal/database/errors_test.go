// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package database

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/animerec/internal/logging"
)

// mockCloser implements io.Closer for testing
type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

type mockTx struct{ rolledBack int }

func (m *mockTx) Rollback() error {
	m.rolledBack++
	return errors.New("already committed")
}

// captureLogs routes the global logger into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

func TestCloseWithLog(t *testing.T) {
	tests := []struct {
		name     string
		closer   *mockCloser
		wantLogs []string
	}{
		{name: "successful close does not log", closer: &mockCloser{}},
		{
			name:     "error during close is logged",
			closer:   &mockCloser{err: errors.New("close failed: connection reset")},
			wantLogs: []string{"Failed to close resource", "embedding rows", "close failed: connection reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			closeWithLog(tt.closer, "embedding rows")

			if !tt.closer.closed {
				t.Error("closer was not closed")
			}
			if len(tt.wantLogs) == 0 && buf.Len() > 0 {
				t.Errorf("unexpected log output: %s", buf.String())
			}
			for _, want := range tt.wantLogs {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("log output %q missing %q", buf.String(), want)
				}
			}
		})
	}

	t.Run("nil closer does not panic", func(t *testing.T) {
		buf := captureLogs(t)
		closeWithLog(nil, "test")
		if buf.Len() > 0 {
			t.Errorf("unexpected log output: %s", buf.String())
		}
	})
}

func TestCloseQuietly(t *testing.T) {
	closeQuietly(nil)

	closer := &mockCloser{err: errors.New("ignored")}
	closeQuietly(closer)
	if !closer.closed {
		t.Error("closer was not closed")
	}
}

func TestRollbackQuietly(t *testing.T) {
	tx := &mockTx{}
	rollbackQuietly(tx)
	if tx.rolledBack != 1 {
		t.Errorf("rollbacks = %d, want 1", tx.rolledBack)
	}
}
