package algebra

// A Polynomial over GF(p), represented by its coefficients in ascending order
// of degree.
type Polynomial struct {
	field        *Field
	coefficients []Element
}

// NewPolynomial creates a new polynomial over the given field with the given
// coefficients, where coefficients[i] is the coefficient of the x^i term. The
// function will panic when no coefficients are given or when any coefficient
// belongs to a different field.
func NewPolynomial(field *Field, coefficients []Element) Polynomial {
	if len(coefficients) == 0 {
		panic("polynomial must have at least one coefficient")
	}
	for _, c := range coefficients {
		if !field.Contains(c) {
			panic("coefficient must be an element of the field")
		}
	}
	return Polynomial{field, coefficients}
}

// NewRandomPolynomial creates a new polynomial of the given degree over the
// given field with uniformly random coefficients. The leading coefficient is
// guaranteed to be nonzero so that the polynomial has exactly the given
// degree, except for degree 0 where the zero polynomial is allowed.
func NewRandomPolynomial(field *Field, degree uint) Polynomial {
	coefficients := make([]Element, degree+1)
	for i := range coefficients {
		coefficients[i] = field.Random()
	}

	for coefficients[degree].IsZero() && degree != 0 {
		coefficients[degree] = field.Random()
	}

	return NewPolynomial(field, coefficients)
}

// Field returns the field the polynomial is defined over.
func (p *Polynomial) Field() *Field {
	return p.field
}

// Coefficients returns a copy of the coefficients of the polynomial, in
// ascending order of degree.
func (p *Polynomial) Coefficients() []Element {
	coefficients := make([]Element, len(p.coefficients))
	copy(coefficients, p.coefficients)
	return coefficients
}

// Degree returns the degree of the polynomial. The zero polynomial is
// considered to have degree 0.
func (p *Polynomial) Degree() (degree uint) {
	degree = uint(len(p.coefficients)) - 1
	for p.coefficients[degree].IsZero() && degree != 0 {
		degree--
	}
	return degree
}

// Evaluate computes the value of the polynomial at the given point using
// Horner's rule. The function will panic when the point belongs to a
// different field.
func (p *Polynomial) Evaluate(x Element) Element {
	if !p.field.Contains(x) {
		panic("cannot evaluate polynomial at a point from a different field")
	}
	accum := p.coefficients[p.Degree()]

	for i := int(p.Degree()) - 1; i >= 0; i-- {
		accum = p.field.mul.Operation(accum, x)
		accum = p.field.add.Operation(accum, p.coefficients[i])
	}

	return accum
}
