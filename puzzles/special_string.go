package puzzles

// SpecialString returns the lexicographically smallest string strictly
// greater than s, of the same length, containing no two adjacent equal
// characters. The alphabet is 'a'..'z'.
// Returns ErrNoAnswer when no such string exists (e.g. "zz").
//
// Strategy: scan positions right to left; at the first position that
// can be bumped to a higher character differing from its left neighbor,
// and whose untouched prefix is itself free of adjacent duplicates,
// bump it and fill the suffix with the smallest characters that keep
// the adjacency rule. O(n·26) time, O(n) space.
func SpecialString(s string) (string, error) {
	n := len(s)
	if n == 0 {
		return "", ErrNoAnswer
	}
	out := []byte(s)

	// cleanBefore[i] reports whether out[0..i-1] has no adjacent equal pair;
	// a dirty prefix can never be kept, so bumps left of the dirt are required.
	cleanBefore := make([]bool, n+1)
	cleanBefore[0], cleanBefore[1] = true, true
	for i := 2; i <= n; i++ {
		cleanBefore[i] = cleanBefore[i-1] && out[i-2] != out[i-1]
	}

	for i := n - 1; i >= 0; i-- {
		if !cleanBefore[i] {
			continue
		}
		for c := out[i] + 1; c <= 'z'; c++ {
			if i > 0 && c == out[i-1] {
				continue
			}
			out[i] = c
			fillSmallest(out, i+1)

			return string(out), nil
		}
	}

	return "", ErrNoAnswer
}

// fillSmallest rewrites out[from:] with the smallest characters that
// avoid adjacent duplicates: 'a' unless the previous character is 'a'.
func fillSmallest(out []byte, from int) {
	for j := from; j < len(out); j++ {
		if j > 0 && out[j-1] == 'a' {
			out[j] = 'b'
		} else {
			out[j] = 'a'
		}
	}
}
