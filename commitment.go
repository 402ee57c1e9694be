package zksudoku

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fr_mimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"

	"github.com/zksudoku/zksudoku/sudoku"
)

// CommittedCircuit is the succinct-input variant of Circuit: instead of 81
// public puzzle cells, the verifier receives a single public scalar bound
// to the MiMC digest of the puzzle. The puzzle grid itself moves to the
// private witness; the in-circuit hash over its cells, in row-major order,
// must equal Commitment.
//
// MiMC operates natively on field elements, so the digest is already a
// canonical scalar and needs no truncation before the equality check.
type CommittedCircuit struct {
	Commitment frontend.Variable `gnark:"commitment,public"`
	Puzzle     Grid              `gnark:"puzzle,secret"`
	Solution   Grid              `gnark:"solution,secret"`
}

// Define builds the full Sudoku predicate and binds the public commitment
// to the puzzle digest.
func (c *CommittedCircuit) Define(api frontend.API) error {
	if err := define(api, c.Puzzle, c.Solution); err != nil {
		return err
	}
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	for i := range c.Puzzle {
		h.Write(c.Puzzle[i][:]...)
	}
	api.AssertIsEqual(h.Sum(), c.Commitment)
	return nil
}

// PuzzleCommitment computes, out-of-circuit, the MiMC digest the committed
// circuit binds to: each of the 81 cells is mapped to a BN254 scalar and
// absorbed in row-major order. The result is what the verifier supplies as
// the single public input.
func PuzzleCommitment(puzzle sudoku.Grid) *big.Int {
	h := fr_mimc.NewMiMC()
	for i := range puzzle {
		for j := range puzzle[i] {
			var cell fr.Element
			cell.SetUint64(uint64(puzzle[i][j]))
			b := cell.Bytes()
			h.Write(b[:])
		}
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}

// NewCommittedAssignment builds a full witness assignment for
// CommittedCircuit, computing the commitment from the puzzle.
func NewCommittedAssignment(puzzle, solution sudoku.Grid) *CommittedCircuit {
	return &CommittedCircuit{
		Commitment: PuzzleCommitment(puzzle),
		Puzzle:     NewGrid(puzzle),
		Solution:   NewGrid(solution),
	}
}

// CommittedPublicAssignment builds the verifier-side assignment for
// CommittedCircuit from a previously computed commitment.
func CommittedPublicAssignment(commitment *big.Int) *CommittedCircuit {
	return &CommittedCircuit{Commitment: commitment}
}
