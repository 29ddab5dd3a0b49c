package puzzles

// MatrixMax returns the maximum element of a rectangular int matrix,
// computed recursively: the answer is the larger of the first row's
// recursive maximum and the maximum of the remaining rows.
// Returns ErrEmptyMatrix if the matrix has no rows or an empty row.
func MatrixMax(m [][]int) (int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, ErrEmptyMatrix
	}

	rowBest := rowMax(m[0], 1, m[0][0])
	if len(m) == 1 {
		return rowBest, nil
	}
	restBest, err := MatrixMax(m[1:])
	if err != nil {
		return 0, err
	}
	if restBest > rowBest {
		return restBest, nil
	}

	return rowBest, nil
}

// rowMax recursively folds the maximum over row[i:].
func rowMax(row []int, i, best int) int {
	if i == len(row) {
		return best
	}
	if row[i] > best {
		best = row[i]
	}

	return rowMax(row, i+1, best)
}
