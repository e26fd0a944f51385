package algebra

import (
	"crypto/rand"
	"math/big"
)

// The AdditiveGroup of GF(p) is the set of all residues [0, p) under addition
// modulo p. Its identity is the zero residue and every element has an
// inverse, so the inverse is a total function.
type AdditiveGroup struct {
	prime    *big.Int
	identity Element
}

// NewAdditiveGroup returns the additive group of GF(p) for the given prime.
// Primality is not checked; addition modulo a composite n still forms a
// group, but such a group does not belong to any field.
func NewAdditiveGroup(prime *big.Int) *AdditiveGroup {
	p := big.NewInt(0).Set(prime)
	return &AdditiveGroup{
		prime:    p,
		identity: NewElement(big.NewInt(0), p),
	}
}

// Identity implements the Group interface. The additive identity is the zero
// residue.
func (g *AdditiveGroup) Identity() Element {
	return g.identity
}

// Operation implements the Group interface. It returns the sum of the two
// elements modulo the prime. The function will panic when either operand is
// defined over a different prime.
func (g *AdditiveGroup) Operation(a, b Element) Element {
	if a.prime.Cmp(g.prime) != 0 || b.prime.Cmp(g.prime) != 0 {
		panic("cannot add elements from a different field")
	}
	return NewElement(big.NewInt(0).Add(a.value, b.value), g.prime)
}

// Inverse implements the Group interface. It returns the additive negation of
// the element modulo the prime. Every element has an additive inverse, so the
// returned error is always nil. The function will panic when the element is
// defined over a different prime.
func (g *AdditiveGroup) Inverse(a Element) (Element, error) {
	if a.prime.Cmp(g.prime) != 0 {
		panic("cannot negate an element from a different field")
	}
	return NewElement(big.NewInt(0).Neg(a.value), g.prime), nil
}

// Include implements the Group interface. Every residue of the field is a
// member of the additive group.
func (g *AdditiveGroup) Include(a Element) bool {
	return a.prime.Cmp(g.prime) == 0
}

// Random implements the Group interface. It samples uniformly from [0, p).
func (g *AdditiveGroup) Random() Element {
	r, err := rand.Int(rand.Reader, g.prime)
	if err != nil {
		panic(err)
	}
	return Element{r, g.prime}
}

// Elements implements the Group interface. It materialises all p residues and
// will panic when p does not fit in an int.
func (g *AdditiveGroup) Elements() []Element {
	if !g.prime.IsInt64() {
		panic("group is too large to enumerate")
	}
	n := int(g.prime.Int64())
	elements := make([]Element, n)
	for i := 0; i < n; i++ {
		elements[i] = NewElement(big.NewInt(int64(i)), g.prime)
	}
	return elements
}

// Order implements the Group interface. The additive group of GF(p) has
// exactly p elements.
func (g *AdditiveGroup) Order() *big.Int {
	return big.NewInt(0).Set(g.prime)
}
