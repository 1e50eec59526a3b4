package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/blacktop/asmview/internal/log"
)

// NoExpiration keeps entries alive until explicitly deleted or flushed.
const NoExpiration = gocache.NoExpiration

// NewInMemoryCacheManager initializes an in-memory cache. useCase labels the
// cache in log output. A zero cleanupInterval disables the janitor, which is
// what permanent caches want.
func NewInMemoryCacheManager[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager is the concrete implementation of the CacheManager
// interface backed by go-cache.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Get retrieves an item from the cache by its key.
func (c *InMemoryCacheManager[K, V]) Get(key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "use_case", c.useCase, "key", key)
		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "use_case", c.useCase, "key", key)
	return v, true
}

// Set stores an item with the given ttl (NoExpiration for permanent entries).
func (c *InMemoryCacheManager[K, V]) Set(key K, value V, ttl time.Duration) {
	c.cache.Set(string(key), value, ttl)
}

// GetOrLoad returns the cached value for key, running the loader and caching
// its result on a miss. Load errors are not cached; the next call retries.
func (c *InMemoryCacheManager[K, V]) GetOrLoad(key K, ttl time.Duration, load Loader[K, V]) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := load(key)
	if err != nil {
		var zeroValue V
		return zeroValue, err
	}

	c.Set(key, v, ttl)
	return v, nil
}

// Delete removes an item from the cache.
func (c *InMemoryCacheManager[K, V]) Delete(key K) {
	c.cache.Delete(string(key))
}

// Flush removes all items from the cache.
func (c *InMemoryCacheManager[K, V]) Flush() {
	c.cache.Flush()
}

// ItemCount returns the number of cached items, expired ones included.
func (c *InMemoryCacheManager[K, V]) ItemCount() int {
	return c.cache.ItemCount()
}
