// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"sort"
)

// DefaultTopN is the hybrid list length when neither request nor options set one.
const DefaultTopN = 10

// NeighborSearch ranks neighbours of an external id. The engine passes a memoising
// implementation; Snapshot.Neighbors is the plain one.
type NeighborSearch func(space Space, id, k int, mode Mode) ([]Neighbor, error)

// FusionOptions controls the sizes used by HybridRecommend.
type FusionOptions struct {
	// UserNeighbors is how many similar users feed the aggregator.
	UserNeighbors int

	// Candidates is how many collaborative candidates the aggregator keeps.
	Candidates int

	// ContentNeighbors is how many similar items each candidate contributes.
	ContentNeighbors int

	// TopN is the default list length.
	TopN int

	// Search overrides the neighbour search. Nil means snap.Neighbors.
	Search NeighborSearch
}

// DefaultFusionOptions returns the sizes of the reference pipeline.
func DefaultFusionOptions() FusionOptions {
	return FusionOptions{
		UserNeighbors:    10,
		Candidates:       10,
		ContentNeighbors: 10,
		TopN:             DefaultTopN,
	}
}

// HybridRecommend blends collaborative and content signals for one user.
//
// The user's nearest neighbours are aggregated into collaborative candidates. Every
// candidate then pulls in its nearest items. Each collaborative name scores
// UserWeight, each content hit scores ContentWeight (repeats accumulate), and the
// names are ranked by total weight with ties kept in insertion order: collaborative
// names first, then content hits in candidate order.
//
// Failures tied to the target user (unknown id, no ratings) are returned. A candidate
// that cannot be resolved to an item vector is recorded in Misses and skipped.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func HybridRecommend(ctx context.Context, snap *Snapshot, req HybridRequest, opts FusionOptions) (*HybridResult, error) {
	search := opts.Search
	if search == nil {
		search = snap.Neighbors
	}

	topN := req.TopN
	if topN <= 0 {
		topN = opts.TopN
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	similarUsers, err := search(SpaceUser, req.UserID, opts.UserNeighbors, ModeNearest)
	if err != nil {
		return nil, fmt.Errorf("similar users of %d: %w", req.UserID, err)
	}

	prefs, err := UserTopItems(req.UserID, snap.Ratings, snap.Catalog)
	if err != nil {
		return nil, fmt.Errorf("preferences of %d: %w", req.UserID, err)
	}

	neighborIDs := make([]int, len(similarUsers))
	for i, n := range similarUsers {
		neighborIDs[i] = n.ID
	}

	candidates, report := Aggregate(neighborIDs, NewPreferenceSet(prefs), snap.Ratings, snap.Catalog, opts.Candidates)

	result := &HybridResult{
		SnapshotVersion:  snap.Version,
		Collaborative:    candidates,
		Dropped:          report.droppedList(),
		SkippedNeighbors: report.SkippedNeighbors,
	}

	var content []string
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		similar, err := similarItemNames(snap, search, ByName(cand.Name), opts.ContentNeighbors)
		if err != nil {
			result.Misses = append(result.Misses, LookupMiss{Name: cand.Name, Reason: err.Error()})
			continue
		}
		content = append(content, similar...)
	}

	scores := newScoreMap()
	for _, cand := range candidates {
		scores.add(cand.Name, req.UserWeight)
	}
	for _, name := range content {
		scores.add(name, req.ContentWeight)
	}

	ranked := scores.ranked()
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	result.Scores = ranked
	result.Names = make([]string, len(ranked))
	for i, s := range ranked {
		result.Names[i] = s.Name
	}

	return result, nil
}

// similarItemNames resolves ref to an item vector and returns the display names of
// its nearest items. Neighbours without a usable name are skipped.
func similarItemNames(snap *Snapshot, search NeighborSearch, ref ItemRef, k int) ([]string, error) {
	item, err := snap.Catalog.Resolve(ref)
	if err != nil {
		return nil, err
	}

	neighbors, err := search(SpaceItem, item.ID, k, ModeNearest)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		name, err := snap.Catalog.DisplayName(n.ID)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// scoreMap accumulates weights per name and remembers first insertion order.
type scoreMap struct {
	index   map[string]int
	entries []FusedScore
}

func newScoreMap() *scoreMap {
	return &scoreMap{index: make(map[string]int)}
}

func (m *scoreMap) add(name string, weight float64) {
	if i, ok := m.index[name]; ok {
		m.entries[i].Score += weight
		return
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, FusedScore{Name: name, Score: weight})
}

// ranked returns the entries by score descending, insertion order on ties.
func (m *scoreMap) ranked() []FusedScore {
	out := make([]FusedScore, len(m.entries))
	copy(out, m.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
