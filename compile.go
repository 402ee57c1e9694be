package zksudoku

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zksudoku/zksudoku/snark"
)

// Compile freezes the plain-mode constraint set for the chosen backend.
// The returned system is structure only (zero-valued template); concrete
// witnesses are attached at proving time.
func Compile(b snark.Backend) (constraint.ConstraintSystem, error) {
	return snark.Compile(b, &Circuit{})
}

// CompileCommitted freezes the commitment-mode constraint set, whose only
// public input is the puzzle digest.
func CompileCommitted(b snark.Backend) (constraint.ConstraintSystem, error) {
	return snark.Compile(b, &CommittedCircuit{})
}
