// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

type neighborQuery struct {
	UserID int     `path:"userID" validate:"gte=0"`
	K      int     `query:"k" validate:"min=1,max=100"`
	Mode   string  `query:"mode" validate:"oneof=nearest furthest"`
	Weight float64 `query:"user_weight" validate:"finite,gte=0"`
}

type itemQuery struct {
	ID   *int   `query:"id" validate:"required_without=Name,excluded_with=Name"`
	Name string `query:"name" validate:"omitempty,max=256"`
}

func intPtr(v int) *int { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	valid := neighborQuery{UserID: 1, K: 10, Mode: "nearest", Weight: 0.5}

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{name: "valid", input: &valid},
		{name: "zero weight allowed", input: &neighborQuery{K: 1, Mode: "furthest"}},
		{
			name:      "k above max",
			input:     &neighborQuery{K: 500, Mode: "nearest"},
			wantField: "k", wantTag: "max", wantMsg: "k must be at most 100",
		},
		{
			name:      "k zero",
			input:     &neighborQuery{K: 0, Mode: "nearest"},
			wantField: "k", wantTag: "min", wantMsg: "k must be at least 1",
		},
		{
			name:      "unknown mode",
			input:     &neighborQuery{K: 5, Mode: "sideways"},
			wantField: "mode", wantTag: "oneof", wantMsg: "mode must be one of: nearest furthest",
		},
		{
			name:      "negative user id uses path name",
			input:     &neighborQuery{UserID: -1, K: 5, Mode: "nearest"},
			wantField: "userID", wantTag: "gte",
		},
		{
			name:      "NaN weight",
			input:     &neighborQuery{K: 5, Mode: "nearest", Weight: math.NaN()},
			wantField: "user_weight", wantTag: "finite", wantMsg: "user_weight must be a finite number",
		},
		{
			name:      "infinite weight",
			input:     &neighborQuery{K: 5, Mode: "nearest", Weight: math.Inf(1)},
			wantField: "user_weight", wantTag: "finite",
		},
		{
			name:      "negative weight",
			input:     &neighborQuery{K: 5, Mode: "nearest", Weight: -0.1},
			wantField: "user_weight", wantTag: "gte",
		},
		{name: "item by id", input: &itemQuery{ID: intPtr(1)}},
		{name: "item by name", input: &itemQuery{Name: "Monster"}},
		{
			name:      "item without reference",
			input:     &itemQuery{},
			wantField: "id", wantTag: "required_without", wantMsg: "id is required when name is not set",
		},
		{
			name:      "item with both references",
			input:     &itemQuery{ID: intPtr(1), Name: "Monster"},
			wantField: "id", wantTag: "excluded_with",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}

			first := err.Errors()[0]
			if first.Field() != tt.wantField || first.Tag() != tt.wantTag {
				t.Errorf("got field=%q tag=%q, want field=%q tag=%q", first.Field(), first.Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && first.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", first.Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single failure", func(t *testing.T) {
		err := ValidateStruct(&neighborQuery{K: 0, Mode: "nearest"})
		apiErr := err.ToAPIError()

		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
		}
		if apiErr.Details["field"] != "k" {
			t.Errorf("Details[field] = %v, want k", apiErr.Details["field"])
		}
	})

	t.Run("multiple failures", func(t *testing.T) {
		err := ValidateStruct(&neighborQuery{K: 0, Mode: "sideways"})
		apiErr := err.ToAPIError()

		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details[fields] = %#v, want 2 entries", apiErr.Details["fields"])
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("Message = %q, want joined messages", apiErr.Message)
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		apiErr := NewFieldError("k", "integer", "abc", "k must be an integer").ToAPIError()
		if apiErr.Message != "k must be an integer" || apiErr.Details["value"] != "abc" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
	})

	t.Run("non-finite value is encodable", func(t *testing.T) {
		for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			apiErr := ValidateStruct(&neighborQuery{K: 5, Mode: "nearest", Weight: w}).ToAPIError()
			if _, ok := apiErr.Details["value"].(string); !ok {
				t.Errorf("Details[value] = %#v for %v, want string", apiErr.Details["value"], w)
			}
			if _, err := json.Marshal(apiErr); err != nil {
				t.Errorf("json.Marshal(%v) error = %v", w, err)
			}
		}
	})

	t.Run("finite value kept as number", func(t *testing.T) {
		apiErr := ValidateStruct(&neighborQuery{K: 5, Mode: "nearest", Weight: -1}).ToAPIError()
		if apiErr.Details["value"] != -1.0 {
			t.Errorf("Details[value] = %#v, want -1", apiErr.Details["value"])
		}
	})

	t.Run("empty", func(t *testing.T) {
		var ve RequestValidationError
		if got := ve.ToAPIError().Message; got != "Validation failed" {
			t.Errorf("Message = %q", got)
		}
		if ve.Error() != "validation failed" {
			t.Errorf("Error() = %q", ve.Error())
		}
	})
}
