// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/auth"
	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/recommend"
)

func mustEmbedding(t *testing.T, space recommend.Space, ids []int, rows [][]float32) *recommend.Embedding {
	t.Helper()

	idMap, err := recommend.NewIDMapFromOrder(ids)
	if err != nil {
		t.Fatalf("NewIDMapFromOrder() error = %v", err)
	}
	matrix := make(recommend.Matrix, len(rows))
	for i, r := range rows {
		matrix[i] = recommend.Vector(r)
	}
	emb, err := recommend.NewEmbedding(space, matrix, idMap)
	if err != nil {
		t.Fatalf("NewEmbedding() error = %v", err)
	}
	return emb
}

// testSnapshot is a three-user world: user 1's nearest neighbour is user 2,
// whose only top item unseen by user 1 is "X"; the nearest content neighbour
// of "X" is "Y". Item 104 is titled "86" to exercise by=name lookups.
func testSnapshot(t *testing.T, version int64) *recommend.Snapshot {
	t.Helper()

	users := mustEmbedding(t, recommend.SpaceUser, []int{1, 2, 3}, [][]float32{
		{1, 0, 0, 0},
		{0.9, 0.1, 0, 0},
		{0, 0, 1, 0},
	})
	items := mustEmbedding(t, recommend.SpaceItem, []int{100, 101, 102, 103, 104}, [][]float32{
		{1, 0, 0, 0},
		{0.8, 0.6, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0.6, 0.8},
	})

	metadata := []recommend.ItemMetadata{
		{ID: 100, EnglishName: "X", Name: "X (JP)", Genres: "Action"},
		{ID: 101, EnglishName: "Y", Name: "Y (JP)", Genres: "Action, Drama"},
		{ID: 102, Name: "Seen", Genres: "Comedy"},
		{ID: 103, EnglishName: "Other", Genres: "Slice of Life"},
		{ID: 104, EnglishName: "86", Name: "Eighty-Six", Genres: "Mecha"},
	}
	synopses := make([]recommend.Synopsis, 0, len(metadata))
	for _, m := range metadata {
		name, _ := m.DisplayName()
		synopses = append(synopses, recommend.Synopsis{ItemID: m.ID, Name: name, Genres: m.Genres, Text: "About " + name})
	}

	snap, err := recommend.NewSnapshot(version, recommend.SnapshotData{
		Users: users,
		Items: items,
		Ratings: []recommend.Rating{
			{UserID: 1, ItemID: 102, Value: 0.9},
			{UserID: 1, ItemID: 103, Value: 0.1},
			{UserID: 2, ItemID: 100, Value: 1.0},
			{UserID: 2, ItemID: 103, Value: 0.2},
			{UserID: 3, ItemID: 103, Value: 0.5},
		},
		Metadata: metadata,
		Synopses: synopses,
	})
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return snap
}

// newTestEngine returns an engine with one user and one content neighbour per
// step. loaded controls whether a snapshot is installed.
func newTestEngine(t *testing.T, loaded bool) *recommend.Engine {
	t.Helper()

	cfg := recommend.DefaultConfig()
	cfg.Fusion.UserNeighbors = 1
	cfg.Fusion.ContentNeighbors = 1

	engine, err := recommend.NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if loaded {
		engine.Swap(testSnapshot(t, 1))
	}
	return engine
}

func newResultStore(t *testing.T) *cache.ResultStore {
	t.Helper()

	store, err := cache.OpenResultStore(cache.ResultStoreConfig{})
	if err != nil {
		t.Fatalf("OpenResultStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// newTestServer routes h with rate limiting disabled.
func newTestServer(h *Handler, guard *auth.Guard) http.Handler {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(h, guard, NewChiMiddleware(cfg)).SetupChi()
}

// fakeReloader records Trigger calls.
type fakeReloader struct {
	mu       sync.Mutex
	err      error
	subjects []string
}

func (f *fakeReloader) Trigger(subject string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	return f.err
}

type fakeBreaker string

func (b fakeBreaker) State() string { return string(b) }

// envelope mirrors models.APIResponse with a raw data member.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		QueryTimeMS int64  `json:"query_time_ms"`
		Cached      bool   `json:"cached"`
		RequestID   string `json:"request_id"`
	} `json:"metadata"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target string, header http.Header) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s response: %v\n%s", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}
