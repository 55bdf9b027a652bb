// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package cache

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/recommend"
)

// Key prefix for BadgerDB storage
const resultKeyPrefix = "result:"

// ErrEmptyKey is returned for writes without a key.
var ErrEmptyKey = errors.New("cache key cannot be empty")

// ResultStore caches serialized responses in BadgerDB with a TTL.
// Keys embed the snapshot version, so a reload never serves stale results;
// Purge drops the old entries early.
type ResultStore struct {
	db     *badger.DB
	ttl    time.Duration
	ownsDB bool

	hits   atomic.Int64
	misses atomic.Int64
}

// OpenResultStore opens a BadgerDB-backed result store.
//
// Example:
//
//	store, err := cache.OpenResultStore(cache.ResultStoreConfig{Path: "/data/cache", TTL: 10 * time.Minute})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func OpenResultStore(cfg ResultStoreConfig) (*ResultStore, error) {
	var opts badger.Options
	if cfg.Path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
		// Cached responses are small; the default 1GB value log is oversized.
		opts.ValueLogFileSize = 16 << 20
	}
	opts.Logger = nil // Suppress BadgerDB internal logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for result cache: %w", err)
	}

	store := NewResultStoreFromDB(db, cfg.TTL)
	store.ownsDB = true
	return store, nil
}

// NewResultStoreFromDB creates a result store on an existing BadgerDB connection.
func NewResultStoreFromDB(db *badger.DB, ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ResultStore{db: db, ttl: ttl}
}

// HybridKey builds the cache key of a hybrid request against a snapshot version.
//
//nolint:gocritic // hugeParam: request is copied once per lookup
func HybridKey(version int64, req recommend.HybridRequest) string {
	return "hybrid:v" + strconv.FormatInt(version, 10) +
		":u" + strconv.Itoa(req.UserID) +
		":uw" + strconv.FormatFloat(req.UserWeight, 'g', -1, 64) +
		":cw" + strconv.FormatFloat(req.ContentWeight, 'g', -1, 64) +
		":n" + strconv.Itoa(req.TopN)
}

// Get decodes the entry stored under key into dst. It reports false on a miss.
func (s *ResultStore) Get(key string, dst any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(resultKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dst)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		s.misses.Add(1)
		return false, nil
	}
	if err != nil {
		s.misses.Add(1)
		return false, fmt.Errorf("get cached result: %w", err)
	}

	s.hits.Add(1)
	return true, nil
}

// Set stores value under key with the store TTL.
func (s *ResultStore) Set(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached result: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(resultKeyPrefix+key), data).WithTTL(s.ttl)
		return txn.SetEntry(e)
	})
}

// Purge removes every cached result.
func (s *ResultStore) Purge() error {
	if err := s.db.DropPrefix([]byte(resultKeyPrefix)); err != nil {
		return fmt.Errorf("purge result cache: %w", err)
	}
	return nil
}

// Len counts the live entries.
func (s *ResultStore) Len() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(resultKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count cached results: %w", err)
	}
	return count, nil
}

// Stats returns hit and miss counters and the current entry count.
func (s *ResultStore) Stats() Stats {
	size, err := s.Len()
	if err != nil {
		size = -1
	}
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Size:   size,
	}
}

// RunGC reclaims value log space. It returns nil when nothing was rewritten.
func (s *ResultStore) RunGC() error {
	err := s.db.RunValueLogGC(0.5)
	if err == nil || errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return fmt.Errorf("result cache gc: %w", err)
}

// Close closes the underlying database when the store opened it.
func (s *ResultStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}
