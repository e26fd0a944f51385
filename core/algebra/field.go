package algebra

import "math/big"

// A Field is the finite field GF(p) for a prime p. It aggregates the additive
// and multiplicative groups of the field, both bound to the same prime, and
// acts as a factory for elements of the field. A Field is read-only after
// construction and can be shared freely between goroutines.
type Field struct {
	prime *big.Int
	add   *AdditiveGroup
	mul   *MultiplicativeGroup
}

// NewField creates the finite field GF(p) for the given prime. The modulus is
// checked with a probabilistic primality test and the function will panic when
// it is not positive or not prime, since every algebraic guarantee of the
// field depends on primality of the modulus.
func NewField(prime *big.Int) *Field {
	if prime.Sign() != 1 {
		panic("modulus must be positive")
	}
	if !prime.ProbablyPrime(32) {
		panic("modulus must be prime")
	}
	p := big.NewInt(0).Set(prime)
	return &Field{
		prime: p,
		add:   NewAdditiveGroup(p),
		mul:   NewMultiplicativeGroup(p),
	}
}

// Element creates an element of the field from the given value, reducing it
// modulo the field's prime.
func (f *Field) Element(value *big.Int) Element {
	return NewElement(value, f.prime)
}

// Prime returns a copy of the prime modulus of the field.
func (f *Field) Prime() *big.Int {
	return big.NewInt(0).Set(f.prime)
}

// AddGroup returns the additive group of the field.
func (f *Field) AddGroup() *AdditiveGroup {
	return f.add
}

// MulGroup returns the multiplicative group of the field.
func (f *Field) MulGroup() *MultiplicativeGroup {
	return f.mul
}

// Eq returns true when both fields are defined over the same prime modulus.
func (f *Field) Eq(g *Field) bool {
	return f.prime.Cmp(g.prime) == 0
}

// Random returns an element sampled uniformly from the field.
func (f *Field) Random() Element {
	return f.add.Random()
}

// Contains returns true when the given element belongs to the field.
func (f *Field) Contains(a Element) bool {
	return a.prime.Cmp(f.prime) == 0
}
