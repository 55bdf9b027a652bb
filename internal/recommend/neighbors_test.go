// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"orthogonal", Vector{1, 0}, Vector{0, 1}, 0},
		{"parallel", Vector{0.6, 0.8}, Vector{0.6, 0.8}, 1},
		{"opposite", Vector{1, 0}, Vector{-1, 0}, -1},
		{"shorter prefix", Vector{1, 2, 3}, Vector{1, 1}, 3},
		{"empty", Vector{}, Vector{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Dot() = %f, want %f", got, tt.want)
			}
		})
	}
}

// neighborFixture: query 5 with two tied rows (3 and 9) and one opposite row (7).
func neighborFixture(t *testing.T) *Embedding {
	t.Helper()
	return mustEmbedding(t, SpaceUser, []int{5, 9, 3, 7}, [][]float32{
		{1, 0},
		{0.5, 0},
		{0.5, 0},
		{-1, 0},
	})
}

func neighborIDs(ns []Neighbor) []int {
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankNeighborsByID(t *testing.T) {
	emb := neighborFixture(t)

	tests := []struct {
		name string
		id   int
		k    int
		mode Mode
		want []int
	}{
		{"nearest ties by ascending id", 5, 2, ModeNearest, []int{3, 9}},
		{"nearest all", 5, 10, ModeNearest, []int{3, 9, 7}},
		{"nearest one", 5, 1, ModeNearest, []int{3}},
		{"furthest one", 5, 1, ModeFurthest, []int{7}},
		{"furthest two returned descending", 5, 2, ModeFurthest, []int{3, 7}},
		{"zero k", 5, 0, ModeNearest, []int{}},
		{"negative k", 5, -3, ModeNearest, []int{}},
		{"query from the middle", 9, 1, ModeNearest, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RankNeighborsByID(emb, tt.id, tt.k, tt.mode)
			if err != nil {
				t.Fatalf("RankNeighborsByID() error = %v", err)
			}
			if ids := neighborIDs(got); !equalInts(ids, tt.want) {
				t.Errorf("RankNeighborsByID() ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestRankNeighbors_FewerThanK(t *testing.T) {
	t.Run("returns every valid neighbour", func(t *testing.T) {
		got, err := RankNeighborsByID(neighborFixture(t), 5, 10, ModeNearest)
		if err != nil {
			t.Fatalf("RankNeighborsByID() error = %v", err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3 (all rows but the query)", len(got))
		}
	})

	t.Run("only the query row", func(t *testing.T) {
		emb := mustEmbedding(t, SpaceItem, []int{42}, [][]float32{{1, 1}})
		got, err := RankNeighborsByID(emb, 42, 5, ModeNearest)
		if err != nil {
			t.Fatalf("RankNeighborsByID() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("RankNeighborsByID() = %#v, want empty non-nil slice", got)
		}
	})
}

func TestRankNeighbors_Properties(t *testing.T) {
	emb := neighborFixture(t)

	got, err := RankNeighborsByID(emb, 5, 3, ModeNearest)
	if err != nil {
		t.Fatalf("RankNeighborsByID() error = %v", err)
	}

	t.Run("excludes self", func(t *testing.T) {
		for _, n := range got {
			if n.ID == 5 {
				t.Error("query entity returned as its own neighbour")
			}
		}
	})

	t.Run("descending similarity", func(t *testing.T) {
		for i := 1; i < len(got); i++ {
			if got[i].Similarity > got[i-1].Similarity {
				t.Errorf("similarity increases at %d: %v", i, got)
			}
		}
	})

	t.Run("similarity is the dot product", func(t *testing.T) {
		if !floatEquals(got[0].Similarity, 0.5) || !floatEquals(got[2].Similarity, -1) {
			t.Errorf("similarities = %v", got)
		}
	})
}

func TestRankNeighbors_Errors(t *testing.T) {
	emb := neighborFixture(t)

	if _, err := RankNeighborsByID(emb, 404, 2, ModeNearest); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("unknown id error = %v, want ErrUnknownEntity", err)
	}
	if _, err := RankNeighbors(emb, 12, 2, ModeNearest); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("unknown index error = %v, want ErrUnknownEntity", err)
	}
}

func TestRankNeighbors_SingleRow(t *testing.T) {
	emb := mustEmbedding(t, SpaceItem, []int{1}, [][]float32{{1, 1}})

	got, err := RankNeighborsByID(emb, 1, 5, ModeNearest)
	if err != nil {
		t.Fatalf("RankNeighborsByID() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("single row returned %v, want empty", got)
	}
}

func TestRankNeighbors_SkipsNaN(t *testing.T) {
	nan := float32(math.NaN())
	emb := mustEmbedding(t, SpaceItem, []int{1, 2, 3}, [][]float32{{1, 0}, {nan, 0}, {0.2, 0}})

	got, err := RankNeighborsByID(emb, 1, 5, ModeNearest)
	if err != nil {
		t.Fatalf("RankNeighborsByID() error = %v", err)
	}
	if ids := neighborIDs(got); !equalInts(ids, []int{3}) {
		t.Errorf("ids = %v, want [3]", ids)
	}
}

func BenchmarkRankNeighbors(b *testing.B) {
	const rows, dim = 5000, 32

	ids := make([]int, rows)
	matrix := make(Matrix, rows)
	for i := range matrix {
		ids[i] = i + 1
		v := make(Vector, dim)
		for j := range v {
			v[j] = float32((i*31+j*17)%97) / 97
		}
		matrix[i] = v
	}
	idMap, _ := NewIDMapFromOrder(ids)
	emb, err := NewEmbedding(SpaceItem, matrix, idMap)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RankNeighbors(emb, i%rows, 10, ModeNearest); err != nil {
			b.Fatal(err)
		}
	}
}
