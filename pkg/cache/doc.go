// Package cache provides a generic, thread-safe LRU cache.
//
// The cache bounds memory for values that are cheap to rebuild but wasteful
// to rebuild on every request: compiled validation patterns and per-session
// debouncers in this module.
//
//	patterns := cache.NewLRUCache[string, *regexp.Regexp](256)
//	re := patterns.GetOrCreate(expr, func() *regexp.Regexp {
//		return regexp.MustCompile(expr)
//	})
//
// Entries leaving the cache (capacity eviction, Remove, Clear) are reported to
// the callback registered with SetEvictCallback, which is the place to stop
// timers or close resources. Callbacks run outside the cache lock.
//
// Get, Put, GetOrCreate and Remove are O(1).
package cache
