// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package storage persists embedding matrices as versioned artifacts.
//
// # Storage Format
//
// Artifacts are gob-encoded, gzip-compressed files with a metadata envelope:
//
//	filename: {name}_v{version}.gob.gz
//
//	structure:
//	  - Metadata (ArtifactMetadata)
//	  - CompressedData (gzip-compressed gob-encoded payload)
//
// Files are written to a temporary name and renamed into place, so a reader
// never observes a partial artifact.
//
// # Usage Example
//
//	store, err := storage.NewStore("/data/artifacts")
//	if err != nil {
//	    return err
//	}
//
//	meta, err := store.SaveEmbedding(ctx, userEmbedding, "user_embeddings")
//	emb, meta, err := store.LoadEmbedding(ctx, recommend.SpaceUser, 0) // 0 = latest
//
// # Data Integrity
//
// Payloads are validated on load with a SHA-256 checksum of the uncompressed
// bytes. A mismatch returns ErrChecksumMismatch instead of handing corrupted
// vectors to the engine.
//
// # Directory Structure
//
//	/data/artifacts/
//	  user_embedding_v1.gob.gz
//	  user_embedding_v2.gob.gz     <- latest
//	  item_embedding_v1.gob.gz
//
// # Thread Safety
//
// All store operations are safe for concurrent use. Loads share a read lock;
// saves, deletes and prunes take the write lock.
package storage
