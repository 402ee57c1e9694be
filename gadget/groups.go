package gadget

import "fmt"

// Cell addresses a grid position.
type Cell struct {
	Row, Col int
}

// Group is one of the 27 Sudoku units: a row, a column or a 3x3 box.
type Group struct {
	Name  string
	Cells [9]Cell
}

// Groups enumerates the 9 rows, 9 columns and 9 boxes in a fixed order.
// Distinctness is enforced over every unordered pair within each group;
// together with AssertAllDistinct this yields 27*36 = 972 pair constraints.
//
// Boxes are enumerated cell-by-cell rather than with the nested
// partial-range loops found in some ports of this circuit, which do not
// obviously cover all 36 pairs per box.
func Groups() []Group {
	groups := make([]Group, 0, 27)
	for i := 0; i < 9; i++ {
		g := Group{Name: fmt.Sprintf("row %d", i)}
		for j := 0; j < 9; j++ {
			g.Cells[j] = Cell{Row: i, Col: j}
		}
		groups = append(groups, g)
	}
	for j := 0; j < 9; j++ {
		g := Group{Name: fmt.Sprintf("column %d", j)}
		for i := 0; i < 9; i++ {
			g.Cells[i] = Cell{Row: i, Col: j}
		}
		groups = append(groups, g)
	}
	for b := 0; b < 9; b++ {
		g := Group{Name: fmt.Sprintf("box %d", b)}
		baseR, baseC := (b/3)*3, (b%3)*3
		for k := 0; k < 9; k++ {
			g.Cells[k] = Cell{Row: baseR + k/3, Col: baseC + k%3}
		}
		groups = append(groups, g)
	}
	return groups
}
