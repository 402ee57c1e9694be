package gadget

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(InverseOrOneHint)
}

// InverseOrOneHint assigns the auxiliary variable of IsZero: the modular
// inverse of the input, or 1 when the input is zero. The value is advisory
// only; the IsZero identities reject any assignment that does not match the
// convention.
func InverseOrOneHint(q *big.Int, inputs, outputs []*big.Int) error {
	v := inputs[0]
	if v.Sign() == 0 {
		outputs[0].SetUint64(1)
		return nil
	}
	outputs[0].ModInverse(v, q)
	return nil
}
