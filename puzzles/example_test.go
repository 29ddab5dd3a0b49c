package puzzles_test

import (
	"fmt"

	"github.com/katalvlaran/patterns/puzzles"
)

// ExampleSpecialString shows the canonical successor cases, including
// the no-answer signal.
func ExampleSpecialString() {
	for _, s := range []string{"a", "aba", "zz"} {
		next, err := puzzles.SpecialString(s)
		if err != nil {
			fmt.Printf("%q -> -1\n", s)
			continue
		}
		fmt.Printf("%q -> %q\n", s, next)
	}
	// Output:
	// "a" -> "b"
	// "aba" -> "abc"
	// "zz" -> -1
}

// ExampleTopKFrequent ranks words by frequency, ties lexicographically.
func ExampleTopKFrequent() {
	words := []string{"i", "love", "leetcode", "i", "love", "coding"}
	top, err := puzzles.TopKFrequent(words, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(top)
	// Output:
	// [i love]
}

// ExampleMatrixMax finds the maximum of a small matrix recursively.
func ExampleMatrixMax() {
	maxVal, err := puzzles.MatrixMax([][]int{{3, 1}, {4, 1}, {5, 9}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(maxVal)
	// Output:
	// 9
}

// ExampleFriendDistance counts friendship hops.
func ExampleFriendDistance() {
	friends := map[string][]string{
		"ana":  {"ben"},
		"ben":  {"ana", "dave"},
		"dave": {"ben"},
	}
	hops, err := puzzles.FriendDistance(friends, "ana", "dave")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(hops)
	// Output:
	// 2
}
