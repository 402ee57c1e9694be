package gadget_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/zksudoku/zksudoku/gadget"
)

type isZeroCircuit struct {
	V    frontend.Variable
	Want frontend.Variable
}

func (c *isZeroCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(gadget.IsZero(api, c.V), c.Want)
	return nil
}

type isEqualCircuit struct {
	A    frontend.Variable
	B    frontend.Variable
	Want frontend.Variable
}

func (c *isEqualCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(gadget.IsEqual(api, c.A, c.B), c.Want)
	return nil
}

type rangeCheckCircuit struct {
	V frontend.Variable
}

func (c *rangeCheckCircuit) Define(api frontend.API) error {
	gadget.RangeCheck1To9(api, c.V)
	return nil
}

type matchCircuit struct {
	Puzzle   frontend.Variable
	Solution frontend.Variable
}

func (c *matchCircuit) Define(api frontend.API) error {
	gadget.EnforceMatch(api, c.Puzzle, c.Solution)
	return nil
}

func solved(t *testing.T, circuit, assignment frontend.Circuit) error {
	t.Helper()
	return test.IsSolved(circuit, assignment, ecc.BN254.ScalarField())
}

func TestIsZero(t *testing.T) {
	require.NoError(t, solved(t, &isZeroCircuit{}, &isZeroCircuit{V: 0, Want: 1}))
	require.NoError(t, solved(t, &isZeroCircuit{}, &isZeroCircuit{V: 5, Want: 0}))
	require.Error(t, solved(t, &isZeroCircuit{}, &isZeroCircuit{V: 0, Want: 0}))
	require.Error(t, solved(t, &isZeroCircuit{}, &isZeroCircuit{V: 7, Want: 1}))

	// a value that wraps to nonzero mod r must still read as nonzero
	huge := new(big.Int).Lsh(big.NewInt(1), 300)
	require.NoError(t, solved(t, &isZeroCircuit{}, &isZeroCircuit{V: huge, Want: 0}))
}

func TestIsZeroNonzeroProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("IsZero(v) == 0 for nonzero v", prop.ForAll(
		func(v uint64) bool {
			if v == 0 {
				v = 1
			}
			return solved(t, &isZeroCircuit{}, &isZeroCircuit{V: v, Want: 0}) == nil
		},
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestIsEqualProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("reflexive", prop.ForAll(
		func(a uint64) bool {
			return solved(t, &isEqualCircuit{}, &isEqualCircuit{A: a, B: a, Want: 1}) == nil
		},
		gen.UInt64(),
	))
	properties.Property("symmetric", prop.ForAll(
		func(a, b uint64) bool {
			want := 0
			if a == b {
				want = 1
			}
			ab := solved(t, &isEqualCircuit{}, &isEqualCircuit{A: a, B: b, Want: want})
			ba := solved(t, &isEqualCircuit{}, &isEqualCircuit{A: b, B: a, Want: want})
			return ab == nil && ba == nil
		},
		gen.UInt64(), gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestRangeCheck1To9(t *testing.T) {
	for v := 1; v <= 9; v++ {
		require.NoError(t, solved(t, &rangeCheckCircuit{}, &rangeCheckCircuit{V: v}), "v=%d", v)
	}
	for _, v := range []int{0, 10, 11, 255} {
		require.Error(t, solved(t, &rangeCheckCircuit{}, &rangeCheckCircuit{V: v}), "v=%d", v)
	}
}

func TestEnforceMatch(t *testing.T) {
	// blank puzzle cell leaves the solution unconstrained
	for v := 1; v <= 9; v++ {
		require.NoError(t, solved(t, &matchCircuit{}, &matchCircuit{Puzzle: 0, Solution: v}))
	}
	// clue forces equality
	require.NoError(t, solved(t, &matchCircuit{}, &matchCircuit{Puzzle: 6, Solution: 6}))
	require.Error(t, solved(t, &matchCircuit{}, &matchCircuit{Puzzle: 6, Solution: 5}))
	require.Error(t, solved(t, &matchCircuit{}, &matchCircuit{Puzzle: 1, Solution: 9}))
}

func TestCheckField(t *testing.T) {
	require.NoError(t, gadget.CheckField(ecc.BN254.ScalarField()))
	require.Error(t, gadget.CheckField(big.NewInt(7)))
	require.Error(t, gadget.CheckField(big.NewInt(9)))
	require.NoError(t, gadget.CheckField(big.NewInt(11)))
}
