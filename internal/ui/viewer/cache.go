package viewer

import (
	"container/list"
	"sync"
)

// RenderKey uniquely identifies a rendered line.
// Generation changes whenever a new highlighting pass publishes a document,
// so stale entries from a replaced document can never be served. Width and
// Theme participate because truncation and styling depend on them.
type RenderKey struct {
	Generation uint64
	Line       int
	Width      int
	Theme      string
}

// CacheMetrics tracks cache performance statistics.
type CacheMetrics struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the cache hit rate as a percentage (0-100).
// Returns 0 if no requests have been made.
func (m CacheMetrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total) * 100
}

// RenderCache is an LRU cache for rendered line strings.
// It has both item count and memory size limits for bounded resource usage.
// Eviction occurs when either limit is exceeded (whichever is hit first).
type RenderCache struct {
	capacity    int
	maxBytes    int64
	currentSize int64
	cache       map[RenderKey]*list.Element
	lru         *list.List
	mu          sync.Mutex

	Metrics CacheMetrics
}

type cacheEntry struct {
	key   RenderKey
	value string
	size  int64
}

// entrySize estimates the memory usage of a cache entry.
func entrySize(key RenderKey, value string) int64 {
	// Value string plus a rough estimate for key fields and list overhead.
	return int64(len(value)) + int64(len(key.Theme)) + 50
}

// DefaultMaxCacheBytes is the default memory limit for the cache (~10MB).
const DefaultMaxCacheBytes = 10 * 1024 * 1024

// DefaultCacheCapacity is the default entry limit for the cache.
const DefaultCacheCapacity = 1000

// NewRenderCache creates a new LRU cache with the given item capacity.
// Uses DefaultMaxCacheBytes for the memory limit.
func NewRenderCache(capacity int) *RenderCache {
	return NewRenderCacheWithLimits(capacity, DefaultMaxCacheBytes)
}

// NewRenderCacheWithLimits creates a new LRU cache with both item and memory
// limits. Eviction occurs when either limit is exceeded.
func NewRenderCacheWithLimits(capacity int, maxBytes int64) *RenderCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &RenderCache{
		capacity: capacity,
		maxBytes: maxBytes,
		cache:    make(map[RenderKey]*list.Element),
		lru:      list.New(),
	}
}

// Get retrieves a cached rendered line, returning ("", false) if not found.
func (c *RenderCache) Get(key RenderKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		c.Metrics.Hits++
		return elem.Value.(*cacheEntry).value, true
	}
	c.Metrics.Misses++
	return "", false
}

// Put stores a rendered line in the cache.
// Evicts entries when either the item count or memory limit is exceeded.
func (c *RenderCache) Put(key RenderKey, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := entrySize(key, value)

	if elem, ok := c.cache[key]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		c.currentSize += size - entry.size
		entry.value = value
		entry.size = size
		return
	}

	for c.lru.Len() >= c.capacity || (c.maxBytes > 0 && c.currentSize+size > c.maxBytes) {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		entry := oldest.Value.(*cacheEntry)
		delete(c.cache, entry.key)
		c.lru.Remove(oldest)
		c.currentSize -= entry.size
		c.Metrics.Evictions++
	}

	entry := &cacheEntry{key: key, value: value, size: size}
	c.cache[key] = c.lru.PushFront(entry)
	c.currentSize += size
}

// Clear empties the cache but preserves metrics.
func (c *RenderCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[RenderKey]*list.Element)
	c.lru.Init()
	c.currentSize = 0
}

// Size returns the current number of cached entries.
func (c *RenderCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// ByteSize returns the current estimated memory usage in bytes.
func (c *RenderCache) ByteSize() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentSize
}

// GetMetrics returns a copy of the current cache metrics.
func (c *RenderCache) GetMetrics() CacheMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Metrics
}
