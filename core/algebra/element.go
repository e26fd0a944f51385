package algebra

import (
	"fmt"
	"math/big"
)

// An Element is a residue of the finite field GF(p), where p is a prime
// modulus. The value is always normalised to the range [0, p). Elements are
// immutable; every arithmetic operation returns a new Element and never
// modifies its operands.
type Element struct {
	value *big.Int
	prime *big.Int
}

// NewElement creates a new Element by reducing the given value modulo the
// given prime. Negative values are supported and reduce to their canonical
// non-negative residue, so NewElement(-1, 7) is the element 6 of GF(7).
// Primality of the modulus is not checked here; constructing elements for a
// composite modulus yields a ring, not a field, and the multiplicative
// structure built on top of such elements is undefined.
func NewElement(value, prime *big.Int) Element {
	v := big.NewInt(0).Mod(value, prime)
	return Element{v, big.NewInt(0).Set(prime)}
}

// Value returns a copy of the normalised value of the element.
func (a Element) Value() *big.Int {
	return big.NewInt(0).Set(a.value)
}

// Prime returns a copy of the prime modulus of the element's field.
func (a Element) Prime() *big.Int {
	return big.NewInt(0).Set(a.prime)
}

// Eq returns true when both elements have the same value and the same prime
// modulus. Elements of different fields are never equal, regardless of their
// numeric values.
func (a Element) Eq(b Element) bool {
	return a.prime.Cmp(b.prime) == 0 && a.value.Cmp(b.value) == 0
}

// SameField returns true when both elements are defined over the same prime
// modulus.
func (a Element) SameField(b Element) bool {
	return a.prime.Cmp(b.prime) == 0
}

func (a Element) IsZero() bool {
	return a.value.Sign() == 0
}

func (a Element) IsOne() bool {
	return a.value.Cmp(big.NewInt(1)) == 0
}

// String implements the Stringer interface.
func (a Element) String() string {
	return fmt.Sprintf("GF(%v)(%v)", a.prime, a.value)
}
