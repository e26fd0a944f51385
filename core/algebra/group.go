package algebra

import "math/big"

// A Group is a set of field elements together with a closed, associative
// binary operation, an identity element, and an inverse for every member of
// the set. The two concrete implementations are the AdditiveGroup and the
// MultiplicativeGroup of GF(p); they share no code, only this contract.
type Group interface {

	// Identity returns the identity element of the group. It is a fixed
	// property of the group and calling it has no side effects.
	Identity() Element

	// Operation applies the group operation to two elements and returns the
	// result as a new Element. Both operands must be defined over the group's
	// prime modulus, otherwise the function will panic.
	Operation(a, b Element) Element

	// Inverse returns the inverse of the given element under the group
	// operation. The additive inverse is total and never returns an error.
	// The multiplicative inverse of the zero residue does not exist and is
	// reported as ErrDivisionByZero.
	Inverse(a Element) (Element, error)

	// Include returns true when the given element is a member of the group's
	// underlying set.
	Include(a Element) bool

	// Random returns an element sampled uniformly from the group's underlying
	// set. Sampling is done directly over the residue range, so it is cheap
	// even for large moduli.
	Random() Element

	// Elements materialises the full underlying set of the group, in
	// ascending order of residue value. This exists to support exhaustive
	// verification over small fields; the function will panic when the order
	// of the group does not fit in an int.
	Elements() []Element

	// Order returns the number of elements in the group.
	Order() *big.Int
}
