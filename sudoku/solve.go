package sudoku

// fits reports whether placing v at (row, col) keeps g free of duplicates
// in the cell's row, column and 3x3 box.
func fits(g *Grid, row, col int, v uint8) bool {
	for k := 0; k < 9; k++ {
		if g[row][k] == v || g[k][col] == v {
			return false
		}
	}
	boxR, boxC := (row/3)*3, (col/3)*3
	for r := boxR; r < boxR+3; r++ {
		for c := boxC; c < boxC+3; c++ {
			if g[r][c] == v {
				return false
			}
		}
	}
	return true
}

func nextBlank(g *Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve fills the blanks of g in place with a valid completion, trying
// digits in ascending order. It reports whether a completion exists.
func Solve(g *Grid) bool {
	row, col, ok := nextBlank(g)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		if fits(g, row, col, v) {
			g[row][col] = v
			if Solve(g) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}

// CountSolutions counts completions of g, stopping once limit is reached.
// The generator only ever needs limit=2 to decide uniqueness.
func CountSolutions(g Grid, limit int) int {
	return countSolutions(&g, limit)
}

func countSolutions(g *Grid, limit int) int {
	row, col, ok := nextBlank(g)
	if !ok {
		return 1
	}
	n := 0
	for v := uint8(1); v <= 9; v++ {
		if fits(g, row, col, v) {
			g[row][col] = v
			n += countSolutions(g, limit-n)
			g[row][col] = 0
			if n >= limit {
				break
			}
		}
	}
	return n
}
