// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"testing"
)

func TestItemMetadata_DisplayName(t *testing.T) {
	tests := []struct {
		name   string
		meta   ItemMetadata
		want   string
		wantOK bool
	}{
		{"english preferred", newItem(1, "Attack on Titan", "Shingeki no Kyojin", ""), "Attack on Titan", true},
		{"canonical fallback", newItem(2, "", "Gintama", ""), "Gintama", true},
		{"no name", newItem(3, "", "", ""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.meta.DisplayName()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DisplayName() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestItemRef(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		ref := ByID(7)
		if id, ok := ref.ID(); !ok || id != 7 {
			t.Errorf("ID() = %d, %v", id, ok)
		}
		if _, ok := ref.Name(); ok {
			t.Error("Name() ok = true for ByID")
		}
		if ref.String() != "id:7" {
			t.Errorf("String() = %q", ref.String())
		}
	})

	t.Run("by name", func(t *testing.T) {
		ref := ByName("Naruto")
		if name, ok := ref.Name(); !ok || name != "Naruto" {
			t.Errorf("Name() = %q, %v", name, ok)
		}
		if _, ok := ref.ID(); ok {
			t.Error("ID() ok = true for ByName")
		}
	})

	t.Run("by id zero is still an id", func(t *testing.T) {
		if _, ok := ByID(0).ID(); !ok {
			t.Error("ByID(0).ID() ok = false")
		}
	})

	t.Run("zero value", func(t *testing.T) {
		var ref ItemRef
		if !ref.IsZero() || ref.String() != "none" {
			t.Errorf("zero ref IsZero() = %v, String() = %q", ref.IsZero(), ref.String())
		}
	})
}

func TestPreferenceSet(t *testing.T) {
	set := NewPreferenceSet([]Preference{{Name: "Monster"}, {Name: "Mushishi"}})

	if !set.Contains("Monster") || !set.Contains("Mushishi") {
		t.Errorf("set %v missing a preference", set)
	}
	if set.Contains("Berserk") {
		t.Error("set contains a name never added")
	}
}
