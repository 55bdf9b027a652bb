// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages. The provider,
// cache and observer interfaces let the database, cache and metrics packages plug in
// without circular imports.

// Operation names reported to the Observer.
const (
	OpSimilarUsers    = "similar_users"
	OpSimilarItems    = "similar_items"
	OpUserPreferences = "user_preferences"
	OpCollaborative   = "collaborative"
	OpHybrid          = "hybrid"
	OpItem            = "item"
)

// DataProvider supplies the tabular part of a snapshot.
// This is typically implemented by the database layer.
type DataProvider interface {
	// Ratings returns every normalised rating record in table order.
	Ratings(ctx context.Context) ([]Rating, error)

	// Items returns the item metadata table.
	Items(ctx context.Context) ([]ItemMetadata, error)

	// Synopses returns the synopsis table.
	Synopses(ctx context.Context) ([]Synopsis, error)
}

// EmbeddingProvider supplies the embedding matrix of a space together with its id map.
type EmbeddingProvider interface {
	Embeddings(ctx context.Context, space Space) (*Embedding, error)
}

// NeighborCache memoises neighbour search results. Keys already carry the snapshot
// version, so a stale entry is never served after a swap.
type NeighborCache interface {
	Get(key string) ([]Neighbor, bool)
	Set(key string, value []Neighbor)
	Clear()
}

// Observer receives engine events, typically to export metrics.
type Observer interface {
	ObserveRequest(operation string, duration time.Duration, err error)
	ObserveLookupMisses(operation string, count int)
	ObserveNeighborCache(space Space, hit bool)
	ObserveSnapshotLoad(status Status, duration time.Duration, err error)
}

// Engine serves recommendations from an immutable snapshot that can be swapped
// while requests are in flight. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	snapshot atomic.Pointer[Snapshot]
	version  atomic.Int64

	// Load state
	loadMu       sync.Mutex
	statusMu     sync.RWMutex
	lastError    string
	lastDuration time.Duration

	// Plugged in before serving
	data       DataProvider
	embeddings EmbeddingProvider
	cache      NeighborCache
	observer   Observer

	// Metrics
	requestCount   atomic.Int64
	errorCount     atomic.Int64
	lookupMisses   atomic.Int64
	neighborHits   atomic.Int64
	neighborMisses atomic.Int64
	loads          atomic.Int64
	loadFailures   atomic.Int64
}

// NewEngine creates a new recommendation engine with no snapshot loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetProviders sets where Load reads tables and embeddings from.
func (e *Engine) SetProviders(data DataProvider, embeddings EmbeddingProvider) {
	e.data = data
	e.embeddings = embeddings
}

// SetNeighborCache enables neighbour memoisation.
func (e *Engine) SetNeighborCache(c NeighborCache) {
	e.cache = c
}

// SetObserver registers an observer for engine events.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// Load reads a fresh snapshot from the providers and swaps it in.
// Only one load runs at a time; a concurrent call fails with ErrLoadInProgress.
func (e *Engine) Load(ctx context.Context) error {
	if e.data == nil || e.embeddings == nil {
		return ErrNoProvider
	}
	if !e.loadMu.TryLock() {
		return ErrLoadInProgress
	}
	defer e.loadMu.Unlock()

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.config.Load.Timeout)
	defer cancel()

	snap, err := e.buildSnapshot(ctx)
	duration := time.Since(start)

	e.statusMu.Lock()
	e.lastDuration = duration
	if err != nil {
		e.lastError = err.Error()
	} else {
		e.lastError = ""
	}
	e.statusMu.Unlock()

	if err != nil {
		e.loadFailures.Add(1)
		e.logger.Error().Err(err).Dur("duration", duration).Msg("snapshot load failed")
		if e.observer != nil {
			e.observer.ObserveSnapshotLoad(e.Status(), duration, err)
		}
		return err
	}

	e.Swap(snap)
	e.loads.Add(1)

	if e.observer != nil {
		e.observer.ObserveSnapshotLoad(e.Status(), duration, nil)
	}
	return nil
}

// buildSnapshot fetches every table and embedding and indexes them.
func (e *Engine) buildSnapshot(ctx context.Context) (*Snapshot, error) {
	users, err := e.embeddings.Embeddings(ctx, SpaceUser)
	if err != nil {
		return nil, fmt.Errorf("load user embeddings: %w", err)
	}
	items, err := e.embeddings.Embeddings(ctx, SpaceItem)
	if err != nil {
		return nil, fmt.Errorf("load item embeddings: %w", err)
	}

	ratings, err := e.data.Ratings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	metadata, err := e.data.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	synopses, err := e.data.Synopses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load synopses: %w", err)
	}

	return NewSnapshot(e.version.Add(1), SnapshotData{
		Users:    users,
		Items:    items,
		Ratings:  ratings,
		Metadata: metadata,
		Synopses: synopses,
	})
}

// Swap installs snap as the current snapshot. Requests already running keep
// the snapshot they started with.
func (e *Engine) Swap(snap *Snapshot) {
	if snap == nil {
		return
	}
	if v := e.version.Load(); snap.Version > v {
		e.version.Store(snap.Version)
	}

	prev := e.snapshot.Swap(snap)
	if e.cache != nil {
		e.cache.Clear()
	}

	status := snap.Status()
	event := e.logger.Info().
		Int64("version", snap.Version).
		Int("users", status.Users).
		Int("items", status.Items).
		Int("ratings", status.Ratings)
	if prev != nil {
		event = event.Int64("previous_version", prev.Version)
	}
	event.Msg("snapshot swapped")
}

// Snapshot returns the current snapshot, or ErrNoSnapshot.
func (e *Engine) Snapshot() (*Snapshot, error) {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// Ready reports whether a snapshot is loaded.
func (e *Engine) Ready() bool {
	return e.snapshot.Load() != nil
}

// SimilarUsers returns the k users closest to (or furthest from) userID.
func (e *Engine) SimilarUsers(ctx context.Context, userID, k int, mode Mode) ([]Neighbor, error) {
	start, snap, err := e.begin(ctx)
	if err != nil {
		return nil, e.finish(OpSimilarUsers, start, err)
	}

	neighbors, err := e.search(snap)(SpaceUser, userID, e.clampK(k), mode)
	return neighbors, e.finish(OpSimilarUsers, start, err)
}

// SimilarItems returns the k items closest to (or furthest from) the referenced item,
// enriched with display name and genres. Neighbours without a display name are skipped.
func (e *Engine) SimilarItems(ctx context.Context, ref ItemRef, k int, mode Mode) ([]SimilarItem, error) {
	start, snap, err := e.begin(ctx)
	if err != nil {
		return nil, e.finish(OpSimilarItems, start, err)
	}

	item, err := snap.Catalog.Resolve(ref)
	if err != nil {
		return nil, e.finish(OpSimilarItems, start, err)
	}

	neighbors, err := e.search(snap)(SpaceItem, item.ID, e.clampK(k), mode)
	if err != nil {
		return nil, e.finish(OpSimilarItems, start, err)
	}

	out := make([]SimilarItem, 0, len(neighbors))
	for _, n := range neighbors {
		meta, err := snap.Catalog.Item(n.ID)
		if err != nil {
			e.logger.Debug().Int("item_id", n.ID).Err(err).Msg("skipping neighbour without metadata")
			continue
		}
		name, ok := meta.DisplayName()
		if !ok {
			continue
		}
		out = append(out, SimilarItem{
			ItemID:     n.ID,
			Name:       name,
			Genres:     meta.Genres,
			Similarity: n.Similarity,
		})
	}

	return out, e.finish(OpSimilarItems, start, nil)
}

// UserPreferences returns the user's top-quartile items.
func (e *Engine) UserPreferences(ctx context.Context, userID int) ([]Preference, error) {
	start, snap, err := e.begin(ctx)
	if err != nil {
		return nil, e.finish(OpUserPreferences, start, err)
	}

	prefs, err := UserTopItems(userID, snap.Ratings, snap.Catalog)
	return prefs, e.finish(OpUserPreferences, start, err)
}

// Collaborative returns up to n candidates liked by the user's nearest neighbours
// and absent from the user's own preferences.
func (e *Engine) Collaborative(ctx context.Context, userID, n int) ([]RecommendedItem, error) {
	start, snap, err := e.begin(ctx)
	if err != nil {
		return nil, e.finish(OpCollaborative, start, err)
	}

	similar, err := e.search(snap)(SpaceUser, userID, e.config.Fusion.UserNeighbors, ModeNearest)
	if err != nil {
		return nil, e.finish(OpCollaborative, start, err)
	}

	prefs, err := UserTopItems(userID, snap.Ratings, snap.Catalog)
	if err != nil {
		return nil, e.finish(OpCollaborative, start, err)
	}

	ids := make([]int, len(similar))
	for i, s := range similar {
		ids[i] = s.ID
	}

	items, report := Aggregate(ids, NewPreferenceSet(prefs), snap.Ratings, snap.Catalog, e.clampN(n))
	e.logReport(userID, report.SkippedNeighbors, report.droppedList(), nil)
	e.recordMisses(OpCollaborative, len(report.Dropped))

	return items, e.finish(OpCollaborative, start, nil)
}

// DefaultHybridRequest returns a request for userID with the configured weights.
func (e *Engine) DefaultHybridRequest(userID int) HybridRequest {
	return HybridRequest{
		UserID:        userID,
		UserWeight:    e.config.Fusion.UserWeight,
		ContentWeight: e.config.Fusion.ContentWeight,
		TopN:          e.config.Fusion.TopN,
	}
}

// Hybrid runs the full hybrid pipeline for one user.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Hybrid(ctx context.Context, req HybridRequest) (*HybridResult, error) {
	start, snap, err := e.begin(ctx)
	if err != nil {
		return nil, e.finish(OpHybrid, start, err)
	}

	req.TopN = e.clampN(req.TopN)

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.RequestTimeout)
	defer cancel()

	opts := e.config.FusionOptions()
	opts.Search = e.search(snap)

	result, err := HybridRecommend(ctx, snap, req, opts)
	if err != nil {
		return nil, e.finish(OpHybrid, start, err)
	}

	e.logReport(req.UserID, result.SkippedNeighbors, result.Dropped, result.Misses)
	e.recordMisses(OpHybrid, len(result.Dropped)+len(result.Misses))

	e.logger.Debug().
		Int("user_id", req.UserID).
		Int64("version", snap.Version).
		Int("candidates", len(result.Collaborative)).
		Int("returned", len(result.Names)).
		Dur("latency", time.Since(start)).
		Msg("hybrid recommendation complete")

	return result, e.finish(OpHybrid, start, nil)
}

// Item returns an item's metadata and synopsis.
func (e *Engine) Item(ctx context.Context, ref ItemRef) (ItemDetail, error) {
	start, snap, err := e.begin(ctx)
	if err != nil {
		return ItemDetail{}, e.finish(OpItem, start, err)
	}

	detail, err := snap.Catalog.Detail(ref)
	return detail, e.finish(OpItem, start, err)
}

// Status returns the state of the current snapshot and the last load attempt.
func (e *Engine) Status() Status {
	var status Status
	if snap := e.snapshot.Load(); snap != nil {
		status = snap.Status()
	}

	e.statusMu.RLock()
	status.LastError = e.lastError
	status.LastLoadDurationMS = e.lastDuration.Milliseconds()
	e.statusMu.RUnlock()

	return status
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:     e.requestCount.Load(),
		ErrorCount:       e.errorCount.Load(),
		LookupMisses:     e.lookupMisses.Load(),
		NeighborHits:     e.neighborHits.Load(),
		NeighborMisses:   e.neighborMisses.Load(),
		SnapshotLoads:    e.loads.Load(),
		SnapshotFailures: e.loadFailures.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// begin counts the request and fetches the current snapshot.
func (e *Engine) begin(ctx context.Context) (time.Time, *Snapshot, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		return start, nil, err
	}
	snap, err := e.Snapshot()
	return start, snap, err
}

// finish records the outcome of an operation and passes err through.
func (e *Engine) finish(op string, start time.Time, err error) error {
	if err != nil {
		e.errorCount.Add(1)
		e.logger.Debug().Str("operation", op).Err(err).Msg("request failed")
	}
	if e.observer != nil {
		e.observer.ObserveRequest(op, time.Since(start), err)
	}
	return err
}

// search returns a neighbour search over snap, memoised when a cache is set.
func (e *Engine) search(snap *Snapshot) NeighborSearch {
	if e.cache == nil {
		return snap.Neighbors
	}

	return func(space Space, id, k int, mode Mode) ([]Neighbor, error) {
		key := neighborKey(snap.Version, space, id, k, mode)
		if cached, ok := e.cache.Get(key); ok {
			e.neighborHits.Add(1)
			if e.observer != nil {
				e.observer.ObserveNeighborCache(space, true)
			}
			return copyNeighbors(cached), nil
		}

		e.neighborMisses.Add(1)
		if e.observer != nil {
			e.observer.ObserveNeighborCache(space, false)
		}

		neighbors, err := snap.Neighbors(space, id, k, mode)
		if err != nil {
			return nil, err
		}
		e.cache.Set(key, copyNeighbors(neighbors))
		return neighbors, nil
	}
}

// clampK applies the default and maximum neighbour counts.
func (e *Engine) clampK(k int) int {
	if k <= 0 {
		return e.config.Limits.DefaultK
	}
	if k > e.config.Limits.MaxK {
		return e.config.Limits.MaxK
	}
	return k
}

// clampN applies the default and maximum list length.
func (e *Engine) clampN(n int) int {
	if n <= 0 {
		return e.config.Fusion.TopN
	}
	if n > e.config.Limits.MaxK {
		return e.config.Limits.MaxK
	}
	return n
}

func (e *Engine) recordMisses(op string, n int) {
	if n == 0 {
		return
	}
	e.lookupMisses.Add(int64(n))
	if e.observer != nil {
		e.observer.ObserveLookupMisses(op, n)
	}
}

// logReport logs what the pipeline skipped for a user.
func (e *Engine) logReport(userID int, skipped []int, dropped, misses []LookupMiss) {
	for _, id := range skipped {
		e.logger.Debug().Int("user_id", userID).Int("neighbor_id", id).Msg("neighbour has no ratings")
	}
	for _, d := range dropped {
		e.logger.Warn().Int("user_id", userID).Str("item", d.Name).Str("reason", d.Reason).Msg("candidate dropped")
	}
	for _, m := range misses {
		e.logger.Warn().Int("user_id", userID).Str("item", m.Name).Str("reason", m.Reason).Msg("content lookup failed")
	}
}

func neighborKey(version int64, space Space, id, k int, mode Mode) string {
	return fmt.Sprintf("nb:%d:%s:%d:%d:%s", version, space, id, k, mode)
}

func copyNeighbors(ns []Neighbor) []Neighbor {
	out := make([]Neighbor, len(ns))
	copy(out, ns)
	return out
}
