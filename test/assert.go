// Package test provides end-to-end assertion helpers running the full
// compile → setup → prove → verify pipeline against a real backend. For
// fast, per-constraint checks use gnark's test engine instead; these
// helpers exist for the slower integration tests and examples.
package test

import (
	"testing"

	"github.com/consensys/gnark/frontend"

	"github.com/zksudoku/zksudoku/snark"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// ProveSucceeded compiles circuit for backend b, proves assignment and
// verifies the proof against public. Any failure along the pipeline fails
// the test.
func (a *Assert) ProveSucceeded(b snark.Backend, circuit, assignment, public frontend.Circuit) {
	a.t.Helper()
	ccs, err := snark.Compile(b, circuit)
	if err != nil {
		a.t.Fatalf("compile: %v", err)
	}
	pk, vk, err := snark.Setup(b, ccs)
	if err != nil {
		a.t.Fatalf("setup: %v", err)
	}
	proof, err := snark.Prove(b, ccs, pk, assignment)
	if err != nil {
		a.t.Fatalf("prove: %v", err)
	}
	if err := snark.Verify(b, proof, vk, public); err != nil {
		a.t.Fatalf("verify: %v", err)
	}
}

// ProveFailed compiles circuit for backend b and expects proving of
// assignment to fail with an unsatisfiable system.
func (a *Assert) ProveFailed(b snark.Backend, circuit, assignment frontend.Circuit) {
	a.t.Helper()
	ccs, err := snark.Compile(b, circuit)
	if err != nil {
		a.t.Fatalf("compile: %v", err)
	}
	pk, _, err := snark.Setup(b, ccs)
	if err != nil {
		a.t.Fatalf("setup: %v", err)
	}
	if _, err := snark.Prove(b, ccs, pk, assignment); err == nil {
		a.t.Fatal("prove should have failed")
	}
}
