package geocoder

import (
	"container/list"
	"context"
	"sync"
)

// Cache wraps a geocoder and keeps successful results with an LRU eviction
// policy. Failed lookups are not cached.
//
// Example:
//
//	g := geocoder.NewCache(upstream, 1000)
//	res, err := g.Geocode(ctx, geocoder.AddressQuery("Berlin"))
type Cache struct {
	delegate   Geocoder
	maxEntries int
	entries    map[Query]*cacheEntry
	lru        *list.List // most recent at front
	hits       int
	misses     int
	mu         sync.Mutex
}

// cacheEntry tracks a cached result and its LRU position
type cacheEntry struct {
	query   Query
	result  Result
	element *list.Element
}

// NewCache creates a cache holding at most maxEntries results. Zero or a
// negative value means unlimited.
func NewCache(delegate Geocoder, maxEntries int) *Cache {
	return &Cache{
		delegate:   delegate,
		maxEntries: maxEntries,
		entries:    make(map[Query]*cacheEntry),
		lru:        list.New(),
	}
}

// Geocode returns a cached result or asks the delegate on a miss. Each call
// receives its own copy of the result.
func (c *Cache) Geocode(ctx context.Context, q Query) (*Result, error) {
	c.mu.Lock()
	if entry, ok := c.entries[q]; ok {
		c.hits++
		c.lru.MoveToFront(entry.element)
		res := entry.result.clone()
		c.mu.Unlock()
		return &res, nil
	}
	c.misses++
	c.mu.Unlock()

	res, err := c.delegate.Geocode(ctx, q)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}

	c.add(q, res.clone())
	out := res.clone()
	return &out, nil
}

func (c *Cache) add(q Query, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[q]; ok {
		entry.result = res
		c.lru.MoveToFront(entry.element)
		return
	}

	if c.maxEntries > 0 {
		for c.lru.Len() >= c.maxEntries {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{query: q, result: res}
	entry.element = c.lru.PushFront(entry)
	c.entries[q] = entry
}

// evictLRU removes the least recently used entry.
// Must be called with c.mu locked.
func (c *Cache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	entry := elem.Value.(*cacheEntry)
	c.lru.Remove(elem)
	delete(c.entries, entry.query)
}

// Clear removes all entries and resets the statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Query]*cacheEntry)
	c.lru.Init()
	c.hits, c.misses = 0, 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
	}
}

// CacheStats holds cache counters.
type CacheStats struct {
	Entries    int // Number of cached results
	MaxEntries int // Capacity, 0 for unlimited
	Hits       int
	Misses     int
}

// clone copies the result so cached data cannot be modified by callers.
func (r Result) clone() Result {
	out := r
	if r.Bounds != nil {
		b := *r.Bounds
		out.Bounds = &b
	}
	if r.Viewport != nil {
		v := *r.Viewport
		out.Viewport = &v
	}
	if r.Address != nil {
		out.Address = make([]AddressComponent, len(r.Address))
		for i, a := range r.Address {
			a.Types = append([]string(nil), a.Types...)
			out.Address[i] = a
		}
	}
	return out
}
