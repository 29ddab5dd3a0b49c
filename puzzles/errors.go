package puzzles

import "errors"

var (
	// ErrNoAnswer indicates no valid successor string exists.
	ErrNoAnswer = errors.New("puzzles: no valid successor")
	// ErrBadK indicates TopKFrequent received k < 1.
	ErrBadK = errors.New("puzzles: k must be positive")
	// ErrEmptyMatrix indicates MatrixMax received a matrix with no elements.
	ErrEmptyMatrix = errors.New("puzzles: matrix is empty")
	// ErrUnknownPerson indicates a FriendDistance endpoint is not in the map.
	ErrUnknownPerson = errors.New("puzzles: person not in friend map")
	// ErrNoPath indicates no friendship chain connects the two people.
	ErrNoPath = errors.New("puzzles: no friendship path")
)
