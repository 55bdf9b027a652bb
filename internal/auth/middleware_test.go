// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/models"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer ", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			if got != tt.want || ok != tt.ok {
				t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGuard_RequireAdmin(t *testing.T) {
	m := newTestManager(t, time.Hour)
	adminToken, _ := m.GenerateToken("ops", RoleAdmin)
	viewerToken, _ := m.GenerateToken("bob", "viewer")

	tests := []struct {
		name       string
		mode       string
		header     string
		wantStatus int
		wantCode   string
		wantAudit  string
	}{
		{"admin token", AuthModeJWT, "Bearer " + adminToken, http.StatusOK, "", `"status":"success"`},
		{"missing header", AuthModeJWT, "", http.StatusUnauthorized, "UNAUTHORIZED", `"status":"failed"`},
		{"invalid token", AuthModeJWT, "Bearer garbage", http.StatusUnauthorized, "UNAUTHORIZED", `"status":"failed"`},
		{"wrong role", AuthModeJWT, "Bearer " + viewerToken, http.StatusForbidden, "FORBIDDEN", `"status":"failed"`},
		{"auth disabled", AuthModeNone, "", http.StatusOK, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var auditBuf bytes.Buffer
			audit := logging.NewAdminAuditLogger(zerolog.New(&auditBuf))
			guard := NewGuard(tt.mode, m, audit)

			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			guard.RequireAdmin(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantAudit != "" && !strings.Contains(auditBuf.String(), tt.wantAudit) {
				t.Errorf("audit log %q missing %q", auditBuf.String(), tt.wantAudit)
			}

			if tt.wantCode == "" {
				want := "ops"
				if tt.mode == AuthModeNone {
					want = AnonymousSubject
				}
				if subject != want {
					t.Errorf("subject = %q, want %q", subject, want)
				}
				return
			}

			var resp models.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Status != models.StatusError || resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("response = %+v, want error code %s", resp, tt.wantCode)
			}
			if strings.Contains(auditBuf.String(), adminToken) || strings.Contains(auditBuf.String(), viewerToken) {
				t.Error("audit log contains an unmasked token")
			}
		})
	}
}

func TestNewGuard_DefaultsToJWT(t *testing.T) {
	guard := NewGuard("", nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/artifacts", nil)
	req.Header.Set("Authorization", "Bearer token")

	guard.RequireAdmin(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
