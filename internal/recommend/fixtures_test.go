// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"math"
	"testing"
)

// mustEmbedding builds an embedding where ids[i] owns rows[i].
func mustEmbedding(t *testing.T, space Space, ids []int, rows [][]float32) *Embedding {
	t.Helper()

	idMap, err := NewIDMapFromOrder(ids)
	if err != nil {
		t.Fatalf("NewIDMapFromOrder() error = %v", err)
	}

	matrix := make(Matrix, len(rows))
	for i, r := range rows {
		matrix[i] = Vector(r)
	}

	emb, err := NewEmbedding(space, matrix, idMap)
	if err != nil {
		t.Fatalf("NewEmbedding() error = %v", err)
	}
	return emb
}

func newItem(id int, english, name, genres string) ItemMetadata {
	return ItemMetadata{ID: id, EnglishName: english, Name: name, Genres: genres}
}

func synopsisFor(m ItemMetadata) Synopsis {
	name, _ := m.DisplayName()
	return Synopsis{ItemID: m.ID, Name: name, Genres: m.Genres, Text: "About " + name}
}

func synopsesFor(items []ItemMetadata) []Synopsis {
	out := make([]Synopsis, 0, len(items))
	for _, m := range items {
		out = append(out, synopsisFor(m))
	}
	return out
}

// e2eData is a three-user world: user 1's nearest neighbour is user 2, whose only
// top item unseen by user 1 is "X"; the nearest content neighbour of "X" is "Y".
func e2eData(t *testing.T) SnapshotData {
	t.Helper()

	users := mustEmbedding(t, SpaceUser, []int{1, 2, 3}, [][]float32{
		{1, 0, 0, 0},
		{0.9, 0.1, 0, 0},
		{0, 0, 1, 0},
	})
	items := mustEmbedding(t, SpaceItem, []int{100, 101, 102, 103}, [][]float32{
		{1, 0, 0, 0},
		{0.8, 0.6, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})

	metadata := []ItemMetadata{
		newItem(100, "X", "X (JP)", "Action"),
		newItem(101, "Y", "Y (JP)", "Action, Drama"),
		newItem(102, "", "Seen", "Comedy"),
		newItem(103, "Other", "", "Slice of Life"),
	}

	return SnapshotData{
		Users: users,
		Items: items,
		Ratings: []Rating{
			{UserID: 1, ItemID: 102, Value: 0.9},
			{UserID: 1, ItemID: 103, Value: 0.1},
			{UserID: 2, ItemID: 100, Value: 1.0},
			{UserID: 2, ItemID: 103, Value: 0.2},
			{UserID: 3, ItemID: 103, Value: 0.5},
		},
		Metadata: metadata,
		Synopses: synopsesFor(metadata),
	}
}

func e2eSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	snap, err := NewSnapshot(1, e2eData(t))
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return snap
}

// fakeSearch returns canned neighbour lists keyed by space and id.
type fakeSearch struct {
	users map[int][]int
	items map[int][]int
	fail  map[int]error
}

func (f fakeSearch) search(space Space, id, k int, _ Mode) ([]Neighbor, error) {
	source := f.users
	if space == SpaceItem {
		if err, ok := f.fail[id]; ok {
			return nil, err
		}
		source = f.items
	}
	ids, ok := source[id]
	if !ok {
		return nil, ErrUnknownEntity
	}
	if len(ids) > k {
		ids = ids[:k]
	}
	out := make([]Neighbor, len(ids))
	for i, n := range ids {
		out[i] = Neighbor{ID: n, Similarity: 1 - float64(i)*0.1}
	}
	return out, nil
}

// mockDataProvider implements DataProvider and EmbeddingProvider for testing.
type mockDataProvider struct {
	data        SnapshotData
	ratingsErr  error
	embedErr    error
	embedCalls  int
	ratingCalls int
}

func (m *mockDataProvider) Ratings(_ context.Context) ([]Rating, error) {
	m.ratingCalls++
	if m.ratingsErr != nil {
		return nil, m.ratingsErr
	}
	return m.data.Ratings, nil
}

func (m *mockDataProvider) Items(_ context.Context) ([]ItemMetadata, error) {
	return m.data.Metadata, nil
}

func (m *mockDataProvider) Synopses(_ context.Context) ([]Synopsis, error) {
	return m.data.Synopses, nil
}

func (m *mockDataProvider) Embeddings(_ context.Context, space Space) (*Embedding, error) {
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if space == SpaceItem {
		return m.data.Items, nil
	}
	return m.data.Users, nil
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
