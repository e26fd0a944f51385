package algebra

import (
	"errors"
	"fmt"
)

// DefaultTrials is the number of random trials an axiom check runs when the
// caller does not specify a trial count.
const DefaultTrials = 50

// ErrAxiomViolation signifies that a sampled set of elements falsified one of
// the field axioms. A violation is not a transient condition; it means the
// structure under test is malformed, usually because its modulus is not
// actually prime.
var ErrAxiomViolation = errors.New("field axiom violation")

// An AxiomError reports the axiom that was falsified together with the
// witness elements that falsified it. It wraps ErrAxiomViolation.
type AxiomError struct {
	Axiom   string
	Witness []Element
}

// Error implements the error interface.
func (e AxiomError) Error() string {
	return fmt.Sprintf("field axiom violation: %v does not hold for %v", e.Axiom, e.Witness)
}

// Unwrap marks the AxiomError as an ErrAxiomViolation.
func (e AxiomError) Unwrap() error {
	return ErrAxiomViolation
}

// CheckDistributivity verifies that multiplication distributes over addition.
// Each trial draws a from the multiplicative group and b, c from the additive
// group, and asserts a*(b+c) == a*b + a*c with exact equality. A non-positive
// trial count falls back to DefaultTrials. The first falsifying triple is
// returned as an AxiomError.
func CheckDistributivity(add *AdditiveGroup, mul *MultiplicativeGroup, trials int) error {
	if trials <= 0 {
		trials = DefaultTrials
	}
	for i := 0; i < trials; i++ {
		a := mul.Random()
		b := add.Random()
		c := add.Random()

		left := mul.Operation(a, add.Operation(b, c))
		right := add.Operation(mul.Operation(a, b), mul.Operation(a, c))

		if !left.Eq(right) {
			return AxiomError{Axiom: "distributivity", Witness: []Element{a, b, c}}
		}
	}
	return nil
}

// CheckGroup verifies the group axioms that are checkable by sampling:
// identity, inverse round-trip, and commutativity. Each trial draws fresh
// random elements from the group. A non-positive trial count falls back to
// DefaultTrials. The first falsifying witness is returned as an AxiomError.
//
// For the multiplicative group this check is what detects a composite
// modulus: the Fermat inverse of a residue that shares a factor with the
// modulus does not multiply back to the identity.
func CheckGroup(g Group, trials int) error {
	if trials <= 0 {
		trials = DefaultTrials
	}
	identity := g.Identity()
	for i := 0; i < trials; i++ {
		a := g.Random()

		if !g.Operation(a, identity).Eq(a) {
			return AxiomError{Axiom: "identity", Witness: []Element{a}}
		}

		inv, err := g.Inverse(a)
		if err != nil {
			return err
		}
		if !g.Operation(a, inv).Eq(identity) {
			return AxiomError{Axiom: "inverse", Witness: []Element{a}}
		}

		b := g.Random()
		if !g.Operation(a, b).Eq(g.Operation(b, a)) {
			return AxiomError{Axiom: "commutativity", Witness: []Element{a, b}}
		}
	}
	return nil
}

// CheckField verifies that the field satisfies the group axioms of both of
// its groups and the distributive law linking them, using DefaultTrials
// random trials for each check. A nil return means no sampled witness
// falsified any axiom; a non-nil return means the field is malformed and no
// meaningful continuation is possible with it.
func CheckField(f *Field) error {
	if err := CheckGroup(f.AddGroup(), DefaultTrials); err != nil {
		return err
	}
	if err := CheckGroup(f.MulGroup(), DefaultTrials); err != nil {
		return err
	}
	return CheckDistributivity(f.AddGroup(), f.MulGroup(), DefaultTrials)
}
