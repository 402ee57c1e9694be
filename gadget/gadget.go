// Package gadget implements the arithmetic sub-circuits the Sudoku circuit
// is composed of. Arithmetic constraints have no native comparison or
// branching, so every check is expressed as a polynomial identity: a
// vanishing product for range membership, the inverse trick for zero and
// equality tests, and an arithmetic select for conditionals.
//
// All gadgets are written against the narrow API interface below, which
// every gnark frontend builder satisfies; the gadget library is therefore
// usable unchanged with R1CS and Plonkish constraint sinks.
package gadget

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// API is the constraint-sink capability the gadgets consume. It is a
// strict subset of frontend.API.
type API interface {
	Add(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable
	Sub(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable
	Mul(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable
	AssertIsEqual(i1, i2 frontend.Variable)
	Compiler() frontend.Compiler
}

// CheckField verifies the vanishing-product range check is meaningful over
// the target field: with characteristic > 9 and no zero divisors, the
// product (v-1)...(v-9) vanishes exactly on {1,...,9}. Called once per
// compile, not per cell.
func CheckField(modulus *big.Int) error {
	if modulus.Cmp(big.NewInt(9)) <= 0 {
		return fmt.Errorf("gadget: field modulus %s too small for 1..9 range check", modulus)
	}
	return nil
}

// RangeCheck1To9 asserts v ∈ {1,...,9} by building the product
// (v-1)(v-2)...(v-9) and forcing it to zero. Costs 8 multiplications.
func RangeCheck1To9(api API, v frontend.Variable) {
	p := api.Sub(v, 1)
	for d := 2; d <= 9; d++ {
		p = api.Mul(p, api.Sub(v, d))
	}
	api.AssertIsEqual(p, 0)
}

// IsZero returns a variable b constrained to 1 when v == 0 and 0 otherwise.
//
// An auxiliary y is obtained from a hint (v⁻¹ when v != 0, 1 when v == 0)
// and the pair of identities
//
//	v·y + b - 1 = 0
//	v·b = 0
//
// pins b: v == 0 forces b = 1, and v != 0 forces b = 0 with y = v⁻¹. No
// booleanity constraint on b is needed, the identities admit no other value.
func IsZero(api API, v frontend.Variable) frontend.Variable {
	ys, err := api.Compiler().NewHint(InverseOrOneHint, 1, v)
	if err != nil {
		panic(fmt.Sprintf("gadget: inverse hint: %v", err))
	}
	y := ys[0]
	b := api.Sub(1, api.Mul(v, y))
	api.AssertIsEqual(api.Mul(v, b), 0)
	return b
}

// IsEqual returns a variable constrained to 1 when a == b and 0 otherwise.
func IsEqual(api API, a, b frontend.Variable) frontend.Variable {
	return IsZero(api, api.Sub(a, b))
}

// EnforceMatch forces solution == puzzle whenever puzzle is non-blank and
// leaves solution unconstrained otherwise:
//
//	z := IsZero(puzzle)
//	e := IsEqual(puzzle, solution)
//	z + (1-z)·e == 1
//
// A blank cell (z = 1) satisfies the identity for any e; a clue (z = 0)
// reduces it to e == 1.
func EnforceMatch(api API, puzzle, solution frontend.Variable) {
	z := IsZero(api, puzzle)
	e := IsEqual(api, puzzle, solution)
	selected := api.Add(z, api.Mul(api.Sub(1, z), e))
	api.AssertIsEqual(selected, 1)
}

// AssertAllDistinct asserts pairwise inequality between all supplied cells
// by forcing IsEqual to zero for every unordered pair. The x < y iteration
// covers the complete C(n,2) set; for a 9-cell Sudoku group that is 36
// pairs.
func AssertAllDistinct(api API, cells []frontend.Variable) {
	for x := 0; x < len(cells); x++ {
		for y := x + 1; y < len(cells); y++ {
			api.AssertIsEqual(IsEqual(api, cells[x], cells[y]), 0)
		}
	}
}
