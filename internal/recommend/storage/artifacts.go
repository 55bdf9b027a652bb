// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package storage

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const artifactExt = ".gob.gz"

// ErrNotFound is returned when no artifact exists for a name or version.
var ErrNotFound = errors.New("artifact not found")

// ErrChecksumMismatch is returned when a stored artifact fails verification.
var ErrChecksumMismatch = errors.New("artifact checksum mismatch")

// ArtifactMetadata contains information about a stored artifact.
type ArtifactMetadata struct {
	// Name is the artifact name (e.g., "user_embedding").
	Name string `json:"name"`

	// Version is the artifact version (monotonically increasing per name).
	Version int `json:"version"`

	// Space is the embedding space the artifact belongs to.
	Space string `json:"space"`

	// Rows is the number of vectors.
	Rows int `json:"rows"`

	// Dimension is the vector length.
	Dimension int `json:"dimension"`

	// Source describes where the vectors came from (table name, file path).
	Source string `json:"source,omitempty"`

	// CreatedAt is when the vectors were produced upstream.
	CreatedAt time.Time `json:"created_at"`

	// SavedAt is when the artifact was written.
	SavedAt time.Time `json:"saved_at"`

	// Checksum is the SHA-256 checksum of the uncompressed payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed payload size in bytes.
	SizeBytes int64 `json:"size_bytes"`
}

// Store manages versioned artifacts on disk.
type Store struct {
	baseDir string
	mu      sync.RWMutex

	// Latest version per artifact name
	versions map[string]int
}

// NewStore creates a new artifact store at the given directory.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for artifact storage
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	s := &Store{
		baseDir:  baseDir,
		versions: make(map[string]int),
	}

	if err := s.scan(); err != nil {
		return nil, fmt.Errorf("scan existing artifacts: %w", err)
	}

	return s, nil
}

// scan records the latest version of every artifact in the directory.
func (s *Store) scan() error {
	found, err := s.listVersions("")
	if err != nil {
		return err
	}
	for name, versions := range found {
		s.versions[name] = versions[0]
	}
	return nil
}

// listVersions maps artifact names to their versions, newest first.
// An empty filter returns every name.
func (s *Store) listVersions(filter string) (map[string][]int, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]int)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), artifactExt) {
			continue
		}
		name, version := parseArtifactFilename(strings.TrimSuffix(entry.Name(), artifactExt))
		if name == "" || (filter != "" && name != filter) {
			continue
		}
		out[name] = append(out[name], version)
	}

	for name := range out {
		sort.Sort(sort.Reverse(sort.IntSlice(out[name])))
	}
	return out, nil
}

// parseArtifactFilename extracts name and version from a stem like "user_embedding_v3".
func parseArtifactFilename(stem string) (name string, version int) {
	idx := strings.LastIndex(stem, "_v")
	if idx <= 0 {
		return "", 0
	}

	if _, err := fmt.Sscanf(stem[idx+2:], "%d", &version); err != nil || version <= 0 {
		return "", 0
	}
	return stem[:idx], version
}

// storedFile is the on-disk format for artifact files.
type storedFile struct {
	Metadata       ArtifactMetadata
	CompressedData []byte
}

// Save stores data under name and version.
//
//nolint:gocritic // meta passed by value is acceptable for this write operation
func (s *Store) Save(ctx context.Context, name string, version int, data interface{}, meta ArtifactMetadata) (*ArtifactMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, fmt.Errorf("invalid version %d", version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	rawData := buf.Bytes()

	hash := sha256.Sum256(rawData)
	meta.Checksum = hex.EncodeToString(hash[:])

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(rawData); err != nil {
		return nil, fmt.Errorf("compress artifact: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return nil, fmt.Errorf("finalize compression: %w", err)
	}

	meta.SizeBytes = int64(compressed.Len())
	meta.SavedAt = time.Now()
	meta.Name = name
	meta.Version = version

	// Write to a temp file and rename so readers never see a partial artifact.
	final := s.artifactPath(name, version)
	tmp, err := os.CreateTemp(s.baseDir, ".tmp-"+name+"-*")
	if err != nil {
		return nil, fmt.Errorf("create artifact file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() //nolint:errcheck // no-op after a successful rename

	if err := gob.NewEncoder(tmp).Encode(storedFile{Metadata: meta, CompressedData: compressed.Bytes()}); err != nil {
		_ = tmp.Close() //nolint:errcheck // the encode error is the one worth returning
		return nil, fmt.Errorf("write artifact file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close artifact file: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		return nil, fmt.Errorf("publish artifact file: %w", err)
	}

	if current, ok := s.versions[name]; !ok || version > current {
		s.versions[name] = version
	}

	return &meta, nil
}

// Load decodes an artifact into target. Version 0 loads the latest version.
func (s *Store) Load(ctx context.Context, name string, version int, target interface{}) (*ArtifactMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if version == 0 {
		var ok bool
		version, ok = s.versions[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}

	sf, err := s.readFile(name, version)
	if err != nil {
		return nil, err
	}

	gzr, err := gzip.NewReader(bytes.NewReader(sf.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("decompress artifact: %w", err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	rawData, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed data: %w", err)
	}

	hash := sha256.Sum256(rawData)
	if checksum := hex.EncodeToString(hash[:]); checksum != sf.Metadata.Checksum {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, sf.Metadata.Checksum, checksum)
	}

	if err := gob.NewDecoder(bytes.NewReader(rawData)).Decode(target); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	return &sf.Metadata, nil
}

// readFile reads the stored envelope of one artifact version.
func (s *Store) readFile(name string, version int) (*storedFile, error) {
	f, err := os.Open(s.artifactPath(name, version)) //nolint:gosec // path is built from a trusted name
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s v%d", ErrNotFound, name, version)
		}
		return nil, fmt.Errorf("open artifact file: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after read is not actionable

	var sf storedFile
	if err := gob.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("read artifact file: %w", err)
	}
	return &sf, nil
}

// GetLatestVersion returns the latest version number of an artifact.
func (s *Store) GetLatestVersion(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	version, ok := s.versions[name]
	return version, ok
}

// ListArtifacts returns metadata for the latest version of every artifact,
// sorted by name.
func (s *Store) ListArtifacts(ctx context.Context) ([]ArtifactMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ArtifactMetadata, 0, len(s.versions))
	for name, version := range s.versions {
		sf, err := s.readFile(name, version)
		if err != nil {
			continue
		}
		out = append(out, sf.Metadata)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Delete removes a specific artifact version.
func (s *Store) Delete(ctx context.Context, name string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.artifactPath(name, version)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s v%d", ErrNotFound, name, version)
		}
		return fmt.Errorf("delete artifact: %w", err)
	}

	if s.versions[name] != version {
		return nil
	}

	found, err := s.listVersions(name)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	if versions := found[name]; len(versions) > 0 {
		s.versions[name] = versions[0]
	} else {
		delete(s.versions, name)
	}

	return nil
}

// Prune removes old versions of an artifact, keeping only the latest keep versions.
// It returns the number of files removed.
func (s *Store) Prune(ctx context.Context, name string, keep int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 1 {
		keep = 1
	}

	found, err := s.listVersions(name)
	if err != nil {
		return 0, fmt.Errorf("read directory: %w", err)
	}

	removed := 0
	versions := found[name]
	for i := keep; i < len(versions); i++ {
		if err := os.Remove(s.artifactPath(name, versions[i])); err == nil {
			removed++
		}
	}

	return removed, nil
}

// artifactPath returns the file path of an artifact version.
func (s *Store) artifactPath(name string, version int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_v%d%s", name, version, artifactExt))
}

// Register gob types for serialization.
//
//nolint:gochecknoinits // gob.Register must be called in init for type registration
func init() {
	gob.Register(ArtifactMetadata{})
	gob.Register(EmbeddingState{})
	gob.Register(storedFile{})
}
