package puzzles

import (
	"fmt"
	"sort"
)

// queueItem pairs a person with their hop distance from the start.
type queueItem struct {
	person string
	hops   int
}

// FriendDistance returns the fewest friendship hops between a and b
// over an undirected friend map (each entry lists a person's direct
// friends). Neighbors are explored in sorted order, so ties resolve
// deterministically. Distance from a person to themselves is 0.
// Returns ErrUnknownPerson if either endpoint is absent from the map,
// or ErrNoPath if no friendship chain connects them.
// Complexity: O(V + E log E) time, O(V) space.
func FriendDistance(friends map[string][]string, a, b string) (int, error) {
	if _, ok := friends[a]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPerson, a)
	}
	if _, ok := friends[b]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPerson, b)
	}
	if a == b {
		return 0, nil
	}

	visited := map[string]bool{a: true}
	queue := []queueItem{{person: a, hops: 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		neighbors := append([]string(nil), friends[item.person]...)
		sort.Strings(neighbors)
		for _, nbr := range neighbors {
			if visited[nbr] {
				continue
			}
			if nbr == b {
				return item.hops + 1, nil
			}
			visited[nbr] = true
			queue = append(queue, queueItem{person: nbr, hops: item.hops + 1})
		}
	}

	return 0, fmt.Errorf("%w: %q to %q", ErrNoPath, a, b)
}
