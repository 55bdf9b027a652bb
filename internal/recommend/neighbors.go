// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// Dot returns the dot product of two vectors, accumulated in float64.
// Vectors of different length are compared over the shorter prefix.
func Dot(a, b Vector) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// RankNeighbors scores the row at queryIndex against every row of the embedding
// and returns up to k neighbours, highest similarity first.
//
// Embeddings are expected to be L2-normalised upstream, so the dot product stands in
// for cosine similarity and no renormalisation happens here. ModeNearest keeps the
// k largest scores, ModeFurthest the k smallest. The query entity never appears in
// the result. Ties are broken by ascending entity id. Rows scoring NaN are skipped.
func RankNeighbors(emb *Embedding, queryIndex, k int, mode Mode) ([]Neighbor, error) {
	queryID, err := emb.IDs.Decode(queryIndex)
	if err != nil {
		return nil, fmt.Errorf("%s space: %w", emb.Space, err)
	}
	if k <= 0 || emb.Rows() <= 1 {
		return []Neighbor{}, nil
	}

	query := emb.Matrix[queryIndex]
	scored := make([]Neighbor, 0, emb.Rows()-1)
	for i, row := range emb.Matrix {
		id, err := emb.IDs.Decode(i)
		if err != nil {
			return nil, fmt.Errorf("%s space: %w", emb.Space, err)
		}
		if id == queryID {
			continue
		}
		sim := Dot(query, row)
		if math.IsNaN(sim) {
			continue
		}
		scored = append(scored, Neighbor{ID: id, Similarity: sim})
	}

	if mode == ModeFurthest {
		sort.Slice(scored, func(i, j int) bool {
			if scored[i].Similarity != scored[j].Similarity {
				return scored[i].Similarity < scored[j].Similarity
			}
			return scored[i].ID < scored[j].ID
		})
		if len(scored) > k {
			scored = scored[:k]
		}
	}

	sortNeighbors(scored)

	if len(scored) > k {
		scored = scored[:k]
	}

	return scored, nil
}

// RankNeighborsByID resolves an external id to its row and ranks its neighbours.
func RankNeighborsByID(emb *Embedding, id, k int, mode Mode) ([]Neighbor, error) {
	idx, err := emb.IDs.Encode(id)
	if err != nil {
		return nil, fmt.Errorf("%s space: %w", emb.Space, err)
	}
	return RankNeighbors(emb, idx, k, mode)
}

// sortNeighbors orders by similarity descending, then id ascending.
func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Similarity != ns[j].Similarity {
			return ns[i].Similarity > ns[j].Similarity
		}
		return ns[i].ID < ns[j].ID
	})
}
