// Package snark is the boundary with the external proving backends. It
// compiles a circuit into a frozen constraint system and wraps setup, proof
// generation and verification for Groth16 (R1CS) and PLONK (Plonkish) over
// BN254.
//
// The constraint-generation core never depends on this package; gadgets and
// circuits only see the frontend capability interface, which both builders
// implement.
package snark

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test/unsafekzg"
)

// Backend selects the proof system a circuit is compiled and proven with.
type Backend uint8

const (
	// Groth16 compiles to R1CS and uses the Groth16 proof system.
	Groth16 Backend = iota
	// Plonk compiles to a Plonkish system and uses PLONK with KZG
	// commitments.
	Plonk
)

func (b Backend) String() string {
	switch b {
	case Groth16:
		return "groth16"
	case Plonk:
		return "plonk"
	default:
		return fmt.Sprintf("backend(%d)", uint8(b))
	}
}

// ProvingKey is the prover half of the setup output.
type ProvingKey interface {
	io.WriterTo
	io.ReaderFrom
}

// VerifyingKey is the verifier half of the setup output.
type VerifyingKey interface {
	io.WriterTo
	io.ReaderFrom
}

// Proof is an opaque, serializable proof.
type Proof interface {
	io.WriterTo
	io.ReaderFrom
}

// Compile builds the frozen constraint system for circuit with the builder
// matching b. The build is deterministic: identical circuits yield
// identical constraint structures.
func Compile(b Backend, circuit frontend.Circuit) (constraint.ConstraintSystem, error) {
	var builder frontend.NewBuilder
	switch b {
	case Groth16:
		builder = r1cs.NewBuilder
	case Plonk:
		builder = scs.NewBuilder
	default:
		return nil, fmt.Errorf("snark: unknown backend %s", b)
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), builder, circuit)
	if err != nil {
		return nil, fmt.Errorf("snark: compile for %s: %w", b, err)
	}
	log := logger.Logger()
	log.Info().
		Str("backend", b.String()).
		Int("nbConstraints", ccs.GetNbConstraints()).
		Int("nbPublic", ccs.GetNbPublicVariables()).
		Int("nbSecret", ccs.GetNbSecretVariables()).
		Msg("constraint system frozen")
	return ccs, nil
}

// Setup derives the proving and verifying keys from the frozen constraint
// system. For PLONK the KZG SRS comes from gnark's unsafekzg helper, which
// is test-grade only; production deployments must substitute a ceremony
// SRS. Neither backend exposes its randomness sampler, so setup output is
// not reproducible across runs.
func Setup(b Backend, ccs constraint.ConstraintSystem) (ProvingKey, VerifyingKey, error) {
	switch b {
	case Groth16:
		pk, vk, err := groth16.Setup(ccs)
		if err != nil {
			return nil, nil, fmt.Errorf("snark: groth16 setup: %w", err)
		}
		return pk, vk, nil
	case Plonk:
		srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
		if err != nil {
			return nil, nil, fmt.Errorf("snark: kzg srs: %w", err)
		}
		pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
		if err != nil {
			return nil, nil, fmt.Errorf("snark: plonk setup: %w", err)
		}
		return pk, vk, nil
	default:
		return nil, nil, fmt.Errorf("snark: unknown backend %s", b)
	}
}

// Prove attaches the concrete witness of assignment to the frozen system
// and produces a proof. A witness violating the Sudoku predicate is not
// detected earlier; it surfaces here as an unsatisfiable system.
func Prove(b Backend, ccs constraint.ConstraintSystem, pk ProvingKey, assignment frontend.Circuit) (Proof, error) {
	w, err := fullWitness(assignment)
	if err != nil {
		return nil, err
	}
	switch b {
	case Groth16:
		gpk, ok := pk.(groth16.ProvingKey)
		if !ok {
			return nil, fmt.Errorf("snark: proving key is not a groth16 key")
		}
		proof, err := groth16.Prove(ccs, gpk, w)
		if err != nil {
			return nil, fmt.Errorf("snark: groth16 prove: %w", err)
		}
		return proof, nil
	case Plonk:
		ppk, ok := pk.(plonk.ProvingKey)
		if !ok {
			return nil, fmt.Errorf("snark: proving key is not a plonk key")
		}
		proof, err := plonk.Prove(ccs, ppk, w)
		if err != nil {
			return nil, fmt.Errorf("snark: plonk prove: %w", err)
		}
		return proof, nil
	default:
		return nil, fmt.Errorf("snark: unknown backend %s", b)
	}
}

// Verify checks proof against the public inputs of publicAssignment. The
// assignment's public-input ordering must match the mode the keys were set
// up for: 81 row-major puzzle cells in plain mode, the single commitment
// scalar in committed mode.
func Verify(b Backend, proof Proof, vk VerifyingKey, publicAssignment frontend.Circuit) error {
	w, err := publicWitness(publicAssignment)
	if err != nil {
		return err
	}
	switch b {
	case Groth16:
		gproof, ok := proof.(groth16.Proof)
		if !ok {
			return fmt.Errorf("snark: proof is not a groth16 proof")
		}
		gvk, ok := vk.(groth16.VerifyingKey)
		if !ok {
			return fmt.Errorf("snark: verifying key is not a groth16 key")
		}
		if err := groth16.Verify(gproof, gvk, w); err != nil {
			return fmt.Errorf("snark: groth16 verify: %w", err)
		}
		return nil
	case Plonk:
		pproof, ok := proof.(plonk.Proof)
		if !ok {
			return fmt.Errorf("snark: proof is not a plonk proof")
		}
		pvk, ok := vk.(plonk.VerifyingKey)
		if !ok {
			return fmt.Errorf("snark: verifying key is not a plonk key")
		}
		if err := plonk.Verify(pproof, pvk, w); err != nil {
			return fmt.Errorf("snark: plonk verify: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("snark: unknown backend %s", b)
	}
}

// NewProvingKey returns an empty proving key for deserialization.
func NewProvingKey(b Backend) (ProvingKey, error) {
	switch b {
	case Groth16:
		return groth16.NewProvingKey(ecc.BN254), nil
	case Plonk:
		return plonk.NewProvingKey(ecc.BN254), nil
	default:
		return nil, fmt.Errorf("snark: unknown backend %s", b)
	}
}

// NewVerifyingKey returns an empty verifying key for deserialization.
func NewVerifyingKey(b Backend) (VerifyingKey, error) {
	switch b {
	case Groth16:
		return groth16.NewVerifyingKey(ecc.BN254), nil
	case Plonk:
		return plonk.NewVerifyingKey(ecc.BN254), nil
	default:
		return nil, fmt.Errorf("snark: unknown backend %s", b)
	}
}

// NewProof returns an empty proof for deserialization.
func NewProof(b Backend) (Proof, error) {
	switch b {
	case Groth16:
		return groth16.NewProof(ecc.BN254), nil
	case Plonk:
		return plonk.NewProof(ecc.BN254), nil
	default:
		return nil, fmt.Errorf("snark: unknown backend %s", b)
	}
}
