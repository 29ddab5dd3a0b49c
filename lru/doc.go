// Package lru is a capacity-bounded least-recently-used cache exercise.
//
// What
//
//   - Get returns the cached value and promotes the entry to
//     most-recently-used.
//   - Put inserts or updates an entry (promoting it) and, at capacity,
//     evicts the least-recently-used entry first.
//   - Both operations are O(1): a map for lookup, a doubly linked list
//     for recency order.
//
// Why
//
//	The classic interview construction: the recency list is the whole
//	point of the exercise, so it is built on container/list rather than
//	imported from a cache library.
//
// Errors
//
//   - ErrBadCapacity if New is called with capacity < 1.
package lru
