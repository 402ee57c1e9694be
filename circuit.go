// Package zksudoku defines arithmetic circuits proving knowledge of a
// Sudoku solution without revealing it.
//
// The public puzzle grid and the private solution grid are translated into
// a set of field-polynomial constraints that is satisfiable exactly when
// the solution is in range, consistent with the puzzle's clues, and free of
// duplicates in every row, column and 3x3 box. The circuits are written
// against the gadget package's capability interface and compile unchanged
// to R1CS (Groth16) and Plonkish (PLONK) constraint systems; proving and
// verification are handled by the snark package.
package zksudoku

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zksudoku/zksudoku/gadget"
	"github.com/zksudoku/zksudoku/sudoku"
)

// Grid is a 9x9 grid of circuit variables, allocated row-major by the
// frontend. Visibility comes from the struct tag of the enclosing circuit
// field.
type Grid [9][9]frontend.Variable

// NewGrid lifts a native grid into circuit assignment form.
func NewGrid(g sudoku.Grid) Grid {
	var out Grid
	for i := range g {
		for j := range g[i] {
			out[i][j] = g[i][j]
		}
	}
	return out
}

// Circuit proves knowledge of a solution to a public puzzle. The 81 puzzle
// cells are the public inputs, in row-major order; the 81 solution cells
// are private witnesses.
type Circuit struct {
	Puzzle   Grid `gnark:"puzzle,public"`
	Solution Grid `gnark:"solution,secret"`
}

// Define builds the Sudoku predicate: range-check the 81 solution cells,
// tie each solution cell to its clue, then enforce pairwise distinctness
// over the 27 groups. All constraints are emitted unconditionally; an
// invalid solution is never rejected here, it makes the system
// unsatisfiable at proving time.
func (c *Circuit) Define(api frontend.API) error {
	return define(api, c.Puzzle, c.Solution)
}

func define(api frontend.API, puzzle, solution Grid) error {
	if err := gadget.CheckField(api.Compiler().Field()); err != nil {
		return err
	}
	for i := range solution {
		for j := range solution[i] {
			gadget.RangeCheck1To9(api, solution[i][j])
		}
	}
	for i := range puzzle {
		for j := range puzzle[i] {
			gadget.EnforceMatch(api, puzzle[i][j], solution[i][j])
		}
	}
	for _, group := range gadget.Groups() {
		cells := make([]frontend.Variable, len(group.Cells))
		for k, cell := range group.Cells {
			cells[k] = solution[cell.Row][cell.Col]
		}
		gadget.AssertAllDistinct(api, cells)
	}
	return nil
}

// NewAssignment builds a full witness assignment for Circuit.
func NewAssignment(puzzle, solution sudoku.Grid) *Circuit {
	return &Circuit{Puzzle: NewGrid(puzzle), Solution: NewGrid(solution)}
}

// PublicAssignment builds the verifier-side assignment for Circuit: the
// puzzle only.
func PublicAssignment(puzzle sudoku.Grid) *Circuit {
	return &Circuit{Puzzle: NewGrid(puzzle)}
}
