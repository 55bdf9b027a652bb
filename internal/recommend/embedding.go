// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "fmt"

// IDMap is a read-only bijection between external ids and matrix row indexes.
type IDMap struct {
	encode map[int]int
	decode map[int]int
}

// NewIDMap builds an IDMap from an encode table (external id -> index).
// It fails when two ids share an index or an index is negative.
func NewIDMap(encode map[int]int) (*IDMap, error) {
	m := &IDMap{
		encode: make(map[int]int, len(encode)),
		decode: make(map[int]int, len(encode)),
	}
	for id, idx := range encode {
		if idx < 0 {
			return nil, fmt.Errorf("%w: negative index %d for id %d", ErrInvalidEmbedding, idx, id)
		}
		if other, dup := m.decode[idx]; dup {
			return nil, fmt.Errorf("%w: index %d claimed by ids %d and %d", ErrInvalidEmbedding, idx, other, id)
		}
		m.encode[id] = idx
		m.decode[idx] = id
	}
	return m, nil
}

// NewIDMapFromOrder builds an IDMap where ids[i] is encoded to index i.
func NewIDMapFromOrder(ids []int) (*IDMap, error) {
	encode := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, dup := encode[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidEmbedding, id)
		}
		encode[id] = i
	}
	return NewIDMap(encode)
}

// Encode returns the row index of an external id.
func (m *IDMap) Encode(id int) (int, error) {
	idx, ok := m.encode[id]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownEntity, id)
	}
	return idx, nil
}

// Decode returns the external id of a row index.
func (m *IDMap) Decode(index int) (int, error) {
	id, ok := m.decode[index]
	if !ok {
		return 0, fmt.Errorf("%w: index %d", ErrUnknownEntity, index)
	}
	return id, nil
}

// Len returns the number of mapped ids.
func (m *IDMap) Len() int {
	return len(m.encode)
}

// EncodeTable returns a copy of the encode table, for persistence.
func (m *IDMap) EncodeTable() map[int]int {
	out := make(map[int]int, len(m.encode))
	for id, idx := range m.encode {
		out[id] = idx
	}
	return out
}

// Embedding is one embedding space: a matrix and the ids of its rows.
type Embedding struct {
	Space  Space
	Matrix Matrix
	IDs    *IDMap
	dim    int
}

// NewEmbedding validates and wraps a matrix with its id map.
// Every row must share one dimension and have a decode entry, so that
// neighbour search never meets an anonymous row.
func NewEmbedding(space Space, matrix Matrix, ids *IDMap) (*Embedding, error) {
	if ids == nil {
		return nil, fmt.Errorf("%w: %s space has no id map", ErrInvalidEmbedding, space)
	}
	if len(matrix) != ids.Len() {
		return nil, fmt.Errorf("%w: %s space has %d rows but %d ids", ErrInvalidEmbedding, space, len(matrix), ids.Len())
	}

	dim := 0
	for i, row := range matrix {
		if i == 0 {
			dim = len(row)
		} else if len(row) != dim {
			return nil, fmt.Errorf("%w: %s row %d has dimension %d, want %d", ErrInvalidEmbedding, space, i, len(row), dim)
		}
		if _, err := ids.Decode(i); err != nil {
			return nil, fmt.Errorf("%w: %s row %d has no id", ErrInvalidEmbedding, space, i)
		}
	}

	return &Embedding{Space: space, Matrix: matrix, IDs: ids, dim: dim}, nil
}

// Rows returns the number of vectors.
func (e *Embedding) Rows() int {
	return len(e.Matrix)
}

// Dimension returns the vector length.
func (e *Embedding) Dimension() int {
	return e.dim
}

// VectorOf returns the vector of an external id.
func (e *Embedding) VectorOf(id int) (Vector, error) {
	idx, err := e.IDs.Encode(id)
	if err != nil {
		return nil, fmt.Errorf("%s space: %w", e.Space, err)
	}
	return e.Matrix[idx], nil
}

// EmbeddingStore gives read-only access to the user and item spaces.
// It is immutable once built and safe for concurrent reads.
type EmbeddingStore struct {
	users *Embedding
	items *Embedding
}

// NewEmbeddingStore pairs the user and item embeddings.
func NewEmbeddingStore(users, items *Embedding) (*EmbeddingStore, error) {
	if users == nil || users.Space != SpaceUser {
		return nil, fmt.Errorf("%w: user embedding missing", ErrInvalidEmbedding)
	}
	if items == nil || items.Space != SpaceItem {
		return nil, fmt.Errorf("%w: item embedding missing", ErrInvalidEmbedding)
	}
	return &EmbeddingStore{users: users, items: items}, nil
}

// Embedding returns the embedding of a space.
func (s *EmbeddingStore) Embedding(space Space) *Embedding {
	if space == SpaceItem {
		return s.items
	}
	return s.users
}

// Matrix returns the full weight matrix of a space.
func (s *EmbeddingStore) Matrix(space Space) Matrix {
	return s.Embedding(space).Matrix
}

// VectorOf returns the vector of id in space, or ErrUnknownEntity.
func (s *EmbeddingStore) VectorOf(space Space, id int) (Vector, error) {
	return s.Embedding(space).VectorOf(id)
}
