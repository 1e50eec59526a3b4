// Package cachemanager provides typed in-memory caches used for expensive
// lookups (loaded language definitions, rendered lines).
package cachemanager

import "time"

// CacheManager is a typed cache over string-like keys.
type CacheManager[K ~string, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(key K)
	Flush()
}

// Loader produces a value for a key on cache miss.
type Loader[K ~string, V any] func(key K) (V, error)
