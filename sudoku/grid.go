// Package sudoku implements the native (out-of-circuit) Sudoku domain:
// grid representation, serialization, solving and puzzle generation.
//
// A puzzle grid uses 0 for blank cells and 1-9 for clues. A solution grid
// uses 1-9 only. Shape is the only thing validated eagerly; digit-range and
// rule violations are left to the constraint system, where they surface as
// unsatisfiability instead of errors.
package sudoku

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrGridSize is returned when a supplied grid is not 9x9.
var ErrGridSize = errors.New("sudoku: grid must be 9x9")

// Grid is a 9x9 Sudoku grid. Cells hold digits 0-9, where 0 marks a blank.
type Grid [9][9]uint8

// FromRows builds a Grid from a slice-of-slices representation, enforcing
// the 9x9 shape. It performs no digit validation.
func FromRows(rows [][]uint8) (Grid, error) {
	var g Grid
	if len(rows) != 9 {
		return g, fmt.Errorf("%w: got %d rows", ErrGridSize, len(rows))
	}
	for i, row := range rows {
		if len(row) != 9 {
			return g, fmt.Errorf("%w: row %d has %d cells", ErrGridSize, i, len(row))
		}
		copy(g[i][:], row)
	}
	return g, nil
}

// gridJSON is the wire form used between prover and verifier.
type gridJSON struct {
	Grid [][]uint8 `json:"grid"`
}

// MarshalJSON encodes the grid as {"grid":[[...],...]}.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]uint8, 9)
	for i := range g {
		rows[i] = append([]uint8(nil), g[i][:]...)
	}
	return json.Marshal(gridJSON{Grid: rows})
}

// UnmarshalJSON decodes {"grid":[[...],...]}, enforcing the 9x9 shape.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromRows(raw.Grid)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Clues returns the number of non-blank cells.
func (g Grid) Clues() int {
	n := 0
	for i := range g {
		for j := range g[i] {
			if g[i][j] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid with dots for blanks, one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for i := range g {
		for j := range g[i] {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if g[i][j] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[i][j])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsSolutionOf reports whether s is a complete, rule-satisfying solution
// consistent with the clues of puzzle p. It mirrors the circuit predicate
// and is used by the generator and tests; the constraint system never calls
// it.
func (s Grid) IsSolutionOf(p Grid) bool {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if s[i][j] < 1 || s[i][j] > 9 {
				return false
			}
			if p[i][j] != 0 && s[i][j] != p[i][j] {
				return false
			}
		}
	}
	for i := 0; i < 9; i++ {
		var row, col, box uint16
		boxR, boxC := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			row |= 1 << s[i][j]
			col |= 1 << s[j][i]
			box |= 1 << s[boxR+j/3][boxC+j%3]
		}
		if row != 0x3fe || col != 0x3fe || box != 0x3fe {
			return false
		}
	}
	return true
}
