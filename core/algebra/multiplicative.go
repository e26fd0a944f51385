package algebra

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrDivisionByZero signifies that a multiplicative inverse of the zero
// residue was requested. Zero has no multiplicative inverse in any field.
var ErrDivisionByZero = errors.New("zero has no multiplicative inverse")

// The MultiplicativeGroup of GF(p) is the set of nonzero residues [1, p)
// under multiplication modulo p. Its identity is the residue one. Inverses
// are computed by Fermat's little theorem, which is valid exactly when the
// modulus is prime.
type MultiplicativeGroup struct {
	prime    *big.Int
	identity Element
}

// NewMultiplicativeGroup returns the multiplicative group of GF(p) for the
// given prime. Primality is not checked here; for a composite modulus the
// nonzero residues do not form a group and the inverses computed by this
// implementation are meaningless. CheckGroup will detect such a modulus.
func NewMultiplicativeGroup(prime *big.Int) *MultiplicativeGroup {
	p := big.NewInt(0).Set(prime)
	return &MultiplicativeGroup{
		prime:    p,
		identity: NewElement(big.NewInt(1), p),
	}
}

// Identity implements the Group interface. The multiplicative identity is the
// residue one.
func (g *MultiplicativeGroup) Identity() Element {
	return g.identity
}

// Operation implements the Group interface. It returns the product of the two
// elements modulo the prime. The zero residue is accepted as an operand even
// though it is not a member of the group; multiplication by zero is well
// defined in the field and yields zero. The function will panic when either
// operand is defined over a different prime.
func (g *MultiplicativeGroup) Operation(a, b Element) Element {
	if a.prime.Cmp(g.prime) != 0 || b.prime.Cmp(g.prime) != 0 {
		panic("cannot multiply elements from a different field")
	}
	return NewElement(big.NewInt(0).Mul(a.value, b.value), g.prime)
}

// Inverse implements the Group interface. It computes a^(p-2) mod p, which by
// Fermat's little theorem is the multiplicative inverse of a whenever p is
// prime and a is nonzero. The exponentiation runs in time logarithmic in p.
// Requesting the inverse of the zero residue returns ErrDivisionByZero. The
// function will panic when the element is defined over a different prime.
func (g *MultiplicativeGroup) Inverse(a Element) (Element, error) {
	if a.prime.Cmp(g.prime) != 0 {
		panic("cannot invert an element from a different field")
	}
	if a.value.Sign() == 0 {
		return Element{}, ErrDivisionByZero
	}
	exponent := big.NewInt(0).Sub(g.prime, big.NewInt(2))
	return Element{big.NewInt(0).Exp(a.value, exponent, g.prime), g.prime}, nil
}

// Include implements the Group interface. The multiplicative group contains
// every residue of the field except zero.
func (g *MultiplicativeGroup) Include(a Element) bool {
	return a.prime.Cmp(g.prime) == 0 && a.value.Sign() != 0
}

// Random implements the Group interface. It samples uniformly from [1, p).
func (g *MultiplicativeGroup) Random() Element {
	max := big.NewInt(0).Sub(g.prime, big.NewInt(1))
	r, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(err)
	}
	return Element{r.Add(r, big.NewInt(1)), g.prime}
}

// Elements implements the Group interface. It materialises all p-1 nonzero
// residues and will panic when p does not fit in an int.
func (g *MultiplicativeGroup) Elements() []Element {
	if !g.prime.IsInt64() {
		panic("group is too large to enumerate")
	}
	n := int(g.prime.Int64())
	elements := make([]Element, 0, n-1)
	for i := 1; i < n; i++ {
		elements = append(elements, NewElement(big.NewInt(int64(i)), g.prime))
	}
	return elements
}

// Order implements the Group interface. The multiplicative group of GF(p) has
// exactly p-1 elements.
func (g *MultiplicativeGroup) Order() *big.Int {
	return big.NewInt(0).Sub(g.prime, big.NewInt(1))
}
