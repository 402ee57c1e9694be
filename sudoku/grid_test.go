package sudoku

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var testSolution = Grid{
	{1, 8, 4, 3, 7, 6, 2, 9, 5},
	{5, 3, 7, 2, 9, 1, 8, 4, 6},
	{9, 2, 6, 8, 4, 5, 7, 1, 3},
	{3, 6, 5, 7, 1, 8, 4, 2, 9},
	{2, 7, 8, 4, 6, 9, 5, 3, 1},
	{4, 1, 9, 5, 3, 2, 6, 7, 8},
	{6, 5, 3, 1, 2, 4, 9, 8, 7},
	{8, 4, 1, 9, 5, 7, 3, 6, 2},
	{7, 9, 2, 6, 8, 3, 1, 5, 4},
}

var testPuzzle = Grid{
	{0, 0, 0, 0, 0, 6, 0, 0, 0},
	{0, 0, 7, 2, 0, 0, 8, 0, 0},
	{9, 0, 6, 8, 0, 0, 0, 1, 0},
	{3, 0, 0, 7, 0, 0, 0, 2, 9},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 0, 0, 5, 0, 0, 0, 7, 0},
	{6, 5, 0, 1, 0, 0, 0, 0, 0},
	{8, 0, 1, 0, 5, 0, 3, 0, 0},
	{7, 9, 2, 0, 0, 0, 0, 0, 4},
}

func TestFromRows(t *testing.T) {
	rows := make([][]uint8, 9)
	for i := range rows {
		rows[i] = testSolution[i][:]
	}
	g, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, testSolution, g)
}

func TestFromRowsShape(t *testing.T) {
	_, err := FromRows(make([][]uint8, 8))
	require.ErrorIs(t, err, ErrGridSize)

	rows := make([][]uint8, 9)
	for i := range rows {
		rows[i] = make([]uint8, 9)
	}
	rows[4] = make([]uint8, 10)
	_, err = FromRows(rows)
	require.ErrorIs(t, err, ErrGridSize)

	_, err = FromRows(nil)
	require.ErrorIs(t, err, ErrGridSize)
}

func TestGridJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(testPuzzle)
	require.NoError(t, err)

	var back Grid
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, testPuzzle, back)
}

func TestGridJSONShape(t *testing.T) {
	var g Grid
	err := json.Unmarshal([]byte(`{"grid":[[1,2,3]]}`), &g)
	require.ErrorIs(t, err, ErrGridSize)
}

func TestClues(t *testing.T) {
	require.Equal(t, 81, testSolution.Clues())
	require.Equal(t, 26, testPuzzle.Clues())
	require.Equal(t, 0, Grid{}.Clues())
}

func TestIsSolutionOf(t *testing.T) {
	require.True(t, testSolution.IsSolutionOf(testPuzzle))
	require.True(t, testSolution.IsSolutionOf(Grid{})) // all blanks

	// clue disagreement
	bad := testPuzzle
	bad[0][5] = 5
	require.False(t, testSolution.IsSolutionOf(bad))

	// out of range
	s := testSolution
	s[0][8] = 10
	require.False(t, s.IsSolutionOf(testPuzzle))

	// duplicate in box and column
	s = testSolution
	s[0][0] = 9
	require.False(t, s.IsSolutionOf(Grid{}))
}

func TestString(t *testing.T) {
	out := testPuzzle.String()
	require.Contains(t, out, ". . . . . 6 . . .")
	require.Contains(t, out, "7 9 2 . . . . . 4")
}
