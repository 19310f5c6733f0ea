// Package cache stores fetched style files between runs.
//
// The [Cache] interface has two implementations: [FileCache] keeps each
// entry as a plain file in a directory (so a cached style file can be opened
// or handed to other tools as is), and [NullCache] stores nothing, which
// turns every lookup into a refetch.
//
// Consistency is simple: an entry either exists and is reused,
// or it is fetched again. There is no expiry or validation of the content.
package cache

import "context"

// Cache is a key/value store for fetched content.
type Cache interface {
	// Get returns the data stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key, replacing any existing entry.
	Set(ctx context.Context, key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}
