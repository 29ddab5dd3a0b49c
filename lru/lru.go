package lru

import (
	"container/list"
	"errors"
)

// ErrBadCapacity indicates New received a capacity below 1.
var ErrBadCapacity = errors.New("lru: capacity must be positive")

// entry is what each list element carries; the key rides along so an
// eviction can delete its map slot.
type entry[K comparable, V any] struct {
	key K
	val V
}

// Cache is a fixed-capacity LRU cache. Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recent
	items    map[K]*list.Element
}

// New returns an empty cache holding at most capacity entries.
// Returns ErrBadCapacity for capacity < 1.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}

	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}, nil
}

// Get returns the value for key and promotes the entry to most recent.
// The second result reports whether the key was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)

	return el.Value.(entry[K, V]).val, true
}

// Put inserts or updates key, promoting it to most recent. When the
// cache is at capacity, the least-recently-used entry is evicted first.
func (c *Cache[K, V]) Put(key K, val V) {
	if el, ok := c.items[key]; ok {
		el.Value = entry[K, V]{key: key, val: val}
		c.order.MoveToFront(el)
		return
	}
	if len(c.items) >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(entry[K, V]).key)
	}
	c.items[key] = c.order.PushFront(entry[K, V]{key: key, val: val})
}

// Len reports the current number of entries.
func (c *Cache[K, V]) Len() int { return len(c.items) }

// Keys returns the keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(entry[K, V]).key)
	}

	return keys
}
