// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"testing"
)

func TestNewIDMap(t *testing.T) {
	tests := []struct {
		name    string
		encode  map[int]int
		wantErr bool
	}{
		{"valid bijection", map[int]int{10: 0, 20: 1, 30: 2}, false},
		{"empty", map[int]int{}, false},
		{"negative index", map[int]int{10: -1}, true},
		{"shared index", map[int]int{10: 0, 20: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIDMap(tt.encode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewIDMap() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEmbedding) {
				t.Errorf("NewIDMap() error = %v, want ErrInvalidEmbedding", err)
			}
		})
	}
}

func TestIDMap_EncodeDecode(t *testing.T) {
	m, err := NewIDMapFromOrder([]int{42, 7, 99})
	if err != nil {
		t.Fatalf("NewIDMapFromOrder() error = %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		for want, id := range []int{42, 7, 99} {
			idx, err := m.Encode(id)
			if err != nil || idx != want {
				t.Errorf("Encode(%d) = %d, %v, want %d", id, idx, err, want)
			}
			back, err := m.Decode(idx)
			if err != nil || back != id {
				t.Errorf("Decode(%d) = %d, %v, want %d", idx, back, err, id)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := m.Encode(1); !errors.Is(err, ErrUnknownEntity) {
			t.Errorf("Encode(1) error = %v, want ErrUnknownEntity", err)
		}
	})

	t.Run("unknown index", func(t *testing.T) {
		if _, err := m.Decode(3); !errors.Is(err, ErrUnknownEntity) {
			t.Errorf("Decode(3) error = %v, want ErrUnknownEntity", err)
		}
	})

	t.Run("encode table is a copy", func(t *testing.T) {
		table := m.EncodeTable()
		table[42] = 100
		if idx, _ := m.Encode(42); idx != 0 {
			t.Errorf("Encode(42) = %d after mutating copy, want 0", idx)
		}
	})
}

func TestNewIDMapFromOrder_Duplicate(t *testing.T) {
	if _, err := NewIDMapFromOrder([]int{1, 2, 1}); !errors.Is(err, ErrInvalidEmbedding) {
		t.Errorf("NewIDMapFromOrder() error = %v, want ErrInvalidEmbedding", err)
	}
}

func TestNewEmbedding(t *testing.T) {
	ids, _ := NewIDMapFromOrder([]int{1, 2})
	sparse, _ := NewIDMap(map[int]int{1: 0, 2: 5})

	tests := []struct {
		name    string
		matrix  Matrix
		ids     *IDMap
		wantErr bool
	}{
		{"valid", Matrix{{1, 0}, {0, 1}}, ids, false},
		{"nil id map", Matrix{{1, 0}}, nil, true},
		{"row count mismatch", Matrix{{1, 0}}, ids, true},
		{"dimension mismatch", Matrix{{1, 0}, {0, 1, 0}}, ids, true},
		{"row without id", Matrix{{1, 0}, {0, 1}}, sparse, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emb, err := NewEmbedding(SpaceUser, tt.matrix, tt.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEmbedding() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidEmbedding) {
					t.Errorf("NewEmbedding() error = %v, want ErrInvalidEmbedding", err)
				}
				return
			}
			if emb.Rows() != 2 || emb.Dimension() != 2 {
				t.Errorf("Rows() = %d, Dimension() = %d, want 2, 2", emb.Rows(), emb.Dimension())
			}
		})
	}
}

func TestEmbeddingStore(t *testing.T) {
	users := mustEmbedding(t, SpaceUser, []int{10, 20}, [][]float32{{1, 0}, {0, 1}})
	items := mustEmbedding(t, SpaceItem, []int{5}, [][]float32{{0.5, 0.5, 0}})

	store, err := NewEmbeddingStore(users, items)
	if err != nil {
		t.Fatalf("NewEmbeddingStore() error = %v", err)
	}

	t.Run("vector of known user", func(t *testing.T) {
		v, err := store.VectorOf(SpaceUser, 20)
		if err != nil {
			t.Fatalf("VectorOf() error = %v", err)
		}
		if v[0] != 0 || v[1] != 1 {
			t.Errorf("VectorOf(user, 20) = %v, want [0 1]", v)
		}
	})

	t.Run("spaces are independent", func(t *testing.T) {
		if _, err := store.VectorOf(SpaceItem, 10); !errors.Is(err, ErrUnknownEntity) {
			t.Errorf("VectorOf(item, 10) error = %v, want ErrUnknownEntity", err)
		}
		if got := len(store.Matrix(SpaceItem)[0]); got != 3 {
			t.Errorf("item dimension = %d, want 3", got)
		}
	})

	t.Run("swapped spaces rejected", func(t *testing.T) {
		if _, err := NewEmbeddingStore(items, users); !errors.Is(err, ErrInvalidEmbedding) {
			t.Errorf("NewEmbeddingStore(items, users) error = %v, want ErrInvalidEmbedding", err)
		}
	})
}

func TestSpaceAndModeParsing(t *testing.T) {
	if s, ok := ParseSpace(SpaceItem.String()); !ok || s != SpaceItem {
		t.Errorf("ParseSpace(%q) = %v, %v", SpaceItem.String(), s, ok)
	}
	if _, ok := ParseSpace("movie"); ok {
		t.Error("ParseSpace(\"movie\") ok = true, want false")
	}

	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeNearest, true},
		{"nearest", ModeNearest, true},
		{"furthest", ModeFurthest, true},
		{"neg", ModeNearest, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMode(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
