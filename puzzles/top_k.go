package puzzles

import "sort"

// TopKFrequent returns the k most frequent words, ordered by descending
// frequency with ties broken by ascending lexicographic order. If fewer
// than k distinct words exist, all of them are returned.
// Returns ErrBadK for k < 1.
func TopKFrequent(words []string, k int) ([]string, error) {
	if k < 1 {
		return nil, ErrBadK
	}

	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}

	distinct := make([]string, 0, len(freq))
	for w := range freq {
		distinct = append(distinct, w)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if freq[distinct[i]] != freq[distinct[j]] {
			return freq[distinct[i]] > freq[distinct[j]]
		}
		return distinct[i] < distinct[j]
	})

	if k > len(distinct) {
		k = len(distinct)
	}

	return distinct[:k], nil
}
