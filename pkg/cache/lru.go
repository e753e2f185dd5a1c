package cache

import (
	"container/list"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRUCache is a thread-safe LRU cache.
// When the cache grows past its capacity the least recently used item is evicted.
// Eviction callbacks run after the internal lock is released, so a callback may
// safely call back into the cache.
type LRUCache[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V)
}

// NewLRUCache creates a new LRU cache with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// SetEvictCallback registers fn to run for every entry pushed out by capacity,
// removed explicitly or dropped by Clear.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value for key and marks it as recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Put stores value under key and returns the previous value, if any.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*lruEntry[K, V])
		old := entry.value
		entry.value = value
		c.mu.Unlock()
		return old, true
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	evicted := c.trim()
	cb := c.onEvict
	c.mu.Unlock()

	notify(cb, evicted)

	var zero V
	return zero, false
}

// GetOrCreate returns the cached value for key, building and storing it with
// create when absent. create runs under the cache lock and must not call back
// into the cache.
func (c *LRUCache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		v := elem.Value.(*lruEntry[K, V]).value
		c.mu.Unlock()
		return v
	}

	value := create()
	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	evicted := c.trim()
	cb := c.onEvict
	c.mu.Unlock()

	notify(cb, evicted)
	return value
}

// Remove deletes key and returns its value if it was present.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()

	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		var zero V
		return zero, false
	}

	entry := c.unlink(elem)
	cb := c.onEvict
	c.mu.Unlock()

	notify(cb, []*lruEntry[K, V]{entry})
	return entry.value, true
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes all items, running the evict callback for each.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()

	evicted := make([]*lruEntry[K, V], 0, len(c.items))
	for _, elem := range c.items {
		evicted = append(evicted, elem.Value.(*lruEntry[K, V]))
	}
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
	cb := c.onEvict
	c.mu.Unlock()

	notify(cb, evicted)
}

// trim drops entries beyond capacity. Must be called with lock held.
func (c *LRUCache[K, V]) trim() []*lruEntry[K, V] {
	var evicted []*lruEntry[K, V]
	for c.order.Len() > c.capacity {
		evicted = append(evicted, c.unlink(c.order.Back()))
	}
	return evicted
}

// unlink removes elem from both indexes. Must be called with lock held.
func (c *LRUCache[K, V]) unlink(elem *list.Element) *lruEntry[K, V] {
	c.order.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
	return entry
}

func notify[K comparable, V any](cb func(K, V), entries []*lruEntry[K, V]) {
	if cb == nil {
		return
	}
	for _, e := range entries {
		cb(e.key, e.value)
	}
}
