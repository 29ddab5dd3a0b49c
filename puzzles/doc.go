// Package puzzles collects the standalone recursion and string
// exercises: the special-string increment, top-k frequent words, a
// recursive matrix maximum, and a friendship-distance BFS.
//
// What
//
//   - SpecialString(s): the lexicographically smallest string strictly
//     greater than s, of the same length, with no two adjacent equal
//     characters; ErrNoAnswer if none exists ("zz" has no successor).
//   - TopKFrequent(words, k): the k most frequent words, ties broken by
//     ascending lexicographic order.
//   - MatrixMax(m): the maximum of a rectangular int matrix, computed
//     recursively row by row.
//   - FriendDistance(friends, a, b): the fewest friendship hops between
//     two people; ErrNoPath if they are in different components.
//
// Why
//
//	Each function is a single-pass (or single-recursion) transformation
//	with an inline expected output; the contract is the test table.
//
// Errors
//
//   - ErrNoAnswer      if no valid successor string exists.
//   - ErrBadK          if k < 1.
//   - ErrEmptyMatrix   if the matrix has no rows or no columns.
//   - ErrUnknownPerson if either endpoint is absent from the friend map.
//   - ErrNoPath        if the two people share no friendship chain.
package puzzles
