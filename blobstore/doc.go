// Package blobstore abstracts where word lists, candidate caches and
// puzzle archives live.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap-backed reads
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible storage
//
// Implement the Store interface to support custom backends.
package blobstore
