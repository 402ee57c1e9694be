package sudoku

import "math/rand"

// Generate produces a puzzle with a unique solution and the solution it was
// carved from. All randomness flows from the caller-supplied rng, so a fixed
// seed reproduces the exact same pair. clues is the target number of givens
// to keep; carving stops early when no cell can be removed without losing
// uniqueness.
func Generate(rng *rand.Rand, clues int) (puzzle, solution Grid) {
	fillRandom(rng, &solution)
	puzzle = solution

	positions := rng.Perm(81)
	for _, pos := range positions {
		if puzzle.Clues() <= clues {
			break
		}
		r, c := pos/9, pos%9
		old := puzzle[r][c]
		puzzle[r][c] = 0
		if CountSolutions(puzzle, 2) != 1 {
			puzzle[r][c] = old
		}
	}
	return puzzle, solution
}

// fillRandom completes an empty grid into a full valid solution, trying the
// digits of each cell in rng order.
func fillRandom(rng *rand.Rand, g *Grid) bool {
	row, col, ok := nextBlank(g)
	if !ok {
		return true
	}
	var digits [9]uint8
	for i := range digits {
		digits[i] = uint8(i + 1)
	}
	rng.Shuffle(9, func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	for _, v := range digits {
		if fits(g, row, col, v) {
			g[row][col] = v
			if fillRandom(rng, g) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}
