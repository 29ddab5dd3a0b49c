package behavioral

import "sort"

// SortStrategy encapsulates one ordering of a string slice.
// Sort must not mutate its input.
type SortStrategy interface {
	Sort(items []string) []string
}

// Alphabetical orders items ascending lexicographically.
type Alphabetical struct{}

// Sort returns a lexicographically ascending copy of items.
func (Alphabetical) Sort(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)

	return out
}

// ByLength orders items by length, shortest first; equal lengths keep
// their relative order.
type ByLength struct{}

// Sort returns a copy of items ordered by length.
func (ByLength) Sort(items []string) []string {
	out := append([]string(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) < len(out[j]) })

	return out
}

// Sorter is the context: it holds exactly one strategy and delegates to
// it. The strategy is swappable at runtime.
type Sorter struct {
	strategy SortStrategy
}

// NewSorter returns a context bound to the given strategy.
func NewSorter(s SortStrategy) *Sorter { return &Sorter{strategy: s} }

// SetStrategy swaps the algorithm used by subsequent Sort calls.
func (s *Sorter) SetStrategy(strategy SortStrategy) { s.strategy = strategy }

// Sort delegates to the current strategy.
func (s *Sorter) Sort(items []string) []string { return s.strategy.Sort(items) }
