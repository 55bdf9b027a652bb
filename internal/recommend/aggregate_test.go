// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"testing"
)

// aggregateWorld: neighbours 2, 3 and 4 share tastes in different amounts;
// user 5 has no ratings.
func aggregateWorld() (*RatingTable, *Catalog) {
	items := []ItemMetadata{
		newItem(10, "Alpha", "", "Action"),
		newItem(11, "Beta", "", "Drama"),
		newItem(12, "Gamma", "", "Comedy"),
		newItem(13, "Delta", "", "Horror"),
		newItem(14, "Epsilon", "", "Mystery"),
	}
	// Epsilon has no synopsis.
	synopses := synopsesFor(items[:4])

	ratings := []Rating{
		{UserID: 2, ItemID: 11, Value: 1.0},
		{UserID: 2, ItemID: 10, Value: 1.0},
		{UserID: 2, ItemID: 14, Value: 1.0},
		{UserID: 3, ItemID: 12, Value: 1.0},
		{UserID: 3, ItemID: 10, Value: 1.0},
		{UserID: 4, ItemID: 10, Value: 0.9},
		{UserID: 4, ItemID: 13, Value: 0.8},
		{UserID: 4, ItemID: 12, Value: 0.1},
	}
	return NewRatingTable(ratings), NewCatalog(items, synopses)
}

func recommendedNames(items []RecommendedItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestAggregate(t *testing.T) {
	ratings, catalog := aggregateWorld()

	tests := []struct {
		name      string
		neighbors []int
		target    PreferenceSet
		n         int
		want      []string
		support   []int
	}{
		{
			name:      "ranked by support, first encounter breaks ties",
			neighbors: []int{2, 3, 4},
			target:    PreferenceSet{},
			n:         4,
			want:      []string{"Alpha", "Beta", "Gamma"},
			support:   []int{3, 1, 1},
		},
		{
			name:      "dropped after truncation",
			neighbors: []int{2, 3, 4},
			target:    PreferenceSet{},
			n:         3,
			want:      []string{"Alpha", "Beta"},
			support:   []int{3, 1},
		},
		{
			name:      "target preferences excluded",
			neighbors: []int{2, 3, 4},
			target:    PreferenceSet{"Alpha": {}, "Beta": {}},
			n:         5,
			want:      []string{"Gamma"},
			support:   []int{1},
		},
		{
			name:      "neighbour order drives ties",
			neighbors: []int{3, 2},
			target:    PreferenceSet{},
			n:         2,
			want:      []string{"Alpha", "Gamma"},
			support:   []int{2, 1},
		},
		{
			name:      "zero n",
			neighbors: []int{2, 3},
			target:    PreferenceSet{},
			n:         0,
			want:      []string{},
		},
		{
			name:      "no neighbours",
			neighbors: nil,
			target:    PreferenceSet{},
			n:         3,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Aggregate(tt.neighbors, tt.target, ratings, catalog, tt.n)
			if names := recommendedNames(got); !equalStrings(names, tt.want) {
				t.Fatalf("Aggregate() = %v, want %v", names, tt.want)
			}
			for i, s := range tt.support {
				if got[i].Support != s {
					t.Errorf("%s support = %d, want %d", got[i].Name, got[i].Support, s)
				}
			}
			for _, it := range got {
				if tt.target.Contains(it.Name) {
					t.Errorf("target preference %q recommended", it.Name)
				}
			}
		})
	}
}

func TestAggregate_Enrichment(t *testing.T) {
	ratings, catalog := aggregateWorld()

	got, _ := Aggregate([]int{3}, PreferenceSet{}, ratings, catalog, 1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := RecommendedItem{Support: 1, ItemID: 12, Name: "Gamma", Genres: "Comedy", Synopsis: "About Gamma"}
	if got[0] != want {
		t.Errorf("Aggregate()[0] = %+v, want %+v", got[0], want)
	}
}

func TestAggregate_DropsMissingSynopsis(t *testing.T) {
	ratings, catalog := aggregateWorld()

	got, report := Aggregate([]int{2}, PreferenceSet{}, ratings, catalog, 3)
	if names := recommendedNames(got); !equalStrings(names, []string{"Beta", "Alpha"}) {
		t.Errorf("Aggregate() = %v, want [Beta Alpha]", names)
	}
	err, ok := report.Dropped["Epsilon"]
	if !ok || !errors.Is(err, ErrMissingMetadata) {
		t.Errorf("Dropped[Epsilon] = %v, %v, want ErrMissingMetadata", err, ok)
	}
	if dl := report.droppedList(); len(dl) != 1 || dl[0].Name != "Epsilon" {
		t.Errorf("droppedList() = %+v", dl)
	}
}

func TestAggregate_SkipsNeighboursWithoutRatings(t *testing.T) {
	ratings, catalog := aggregateWorld()

	got, report := Aggregate([]int{5, 3}, PreferenceSet{}, ratings, catalog, 2)
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
	if len(report.SkippedNeighbors) != 1 || report.SkippedNeighbors[0] != 5 {
		t.Errorf("SkippedNeighbors = %v, want [5]", report.SkippedNeighbors)
	}
}
