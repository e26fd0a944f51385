package algebra

import "math/big"

// A Number couples an element with the Field it belongs to, exposing field
// arithmetic as methods on the value itself instead of operations on the
// underlying groups. Many Numbers may share one Field; the field reference is
// propagated unchanged through every operation. Numbers are immutable; every
// operator returns a new Number.
type Number struct {
	field *Field
	elem  Element
}

// NewNumber creates a Number in the given field from the given value,
// reducing it modulo the field's prime.
func NewNumber(field *Field, value *big.Int) Number {
	return Number{field, field.Element(value)}
}

// Field returns the field the number belongs to.
func (x Number) Field() *Field {
	return x.field
}

// Element returns the underlying field element of the number.
func (x Number) Element() Element {
	return x.elem
}

// Eq returns true when both numbers hold equal elements of the same field.
func (x Number) Eq(y Number) bool {
	return x.elem.Eq(y.elem)
}

// Add returns x + y. The function will panic when the operands belong to
// different fields.
func (x Number) Add(y Number) Number {
	return Number{x.field, x.field.add.Operation(x.elem, y.elem)}
}

// Sub returns x - y, computed as the sum of x and the additive inverse of y.
// The function will panic when the operands belong to different fields.
func (x Number) Sub(y Number) Number {
	inv, _ := x.field.add.Inverse(y.elem) // additive inverse is total
	return Number{x.field, x.field.add.Operation(x.elem, inv)}
}

// Mul returns x * y. The function will panic when the operands belong to
// different fields.
func (x Number) Mul(y Number) Number {
	return Number{x.field, x.field.mul.Operation(x.elem, y.elem)}
}

// Div returns x / y, computed as the product of x and the multiplicative
// inverse of y. Dividing by the zero residue returns ErrDivisionByZero. The
// function will panic when the operands belong to different fields.
func (x Number) Div(y Number) (Number, error) {
	inv, err := x.field.mul.Inverse(y.elem)
	if err != nil {
		return Number{}, err
	}
	return Number{x.field, x.field.mul.Operation(x.elem, inv)}, nil
}

// String implements the Stringer interface.
func (x Number) String() string {
	return x.elem.String()
}
