package gf256

// Poly represents a polynomial whose coefficients are elements of a Field,
// stored from highest degree to lowest. Instances are immutable.
type Poly struct {
	field        *Field
	coefficients []int
}

// newPoly builds a polynomial, trimming any leading zero coefficients.
func newPoly(field *Field, coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic("gf256: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			trimmed := make([]int, len(coefficients)-firstNonZero)
			copy(trimmed, coefficients[firstNonZero:])
			coefficients = trimmed
		}
	}
	return &Poly{field: field, coefficients: coefficients}
}

// NewPoly builds a polynomial over f from descending-degree coefficients.
func NewPoly(f *Field, coefficients []int) *Poly {
	return newPoly(f, coefficients)
}

// Coefficients returns the polynomial's coefficients, highest degree first.
func (p *Poly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the degree of the polynomial.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates the polynomial at a using Horner's method.
func (p *Poly) EvaluateAt(a int) int {
	if a == 0 {
		return p.Coefficient(0)
	}
	if a == 1 {
		result := 0
		for _, c := range p.coefficients {
			result = AddOrSubtract(result, c)
		}
		return result
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = AddOrSubtract(p.field.Mul(a, result), p.coefficients[i])
	}
	return result
}

// Add adds (equivalently subtracts) another polynomial over the same field.
func (p *Poly) Add(other *Poly) *Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smaller := p.coefficients
	larger := other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sum := make([]int, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = AddOrSubtract(smaller[i-diff], larger[i])
	}

	return newPoly(p.field, sum)
}

// Multiply returns the product p*q over the field, coefficients in
// descending degree order: the `poly_multiply` operation from the GF(256)
// kernel design.
func (p *Poly) Multiply(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return p.field.zero
	}
	a := p.coefficients
	b := other.coefficients
	product := make([]int, len(a)+len(b)-1)
	for i, ac := range a {
		for j, bc := range b {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Mul(ac, bc))
		}
	}
	return newPoly(p.field, product)
}

// MultiplyByMonomial multiplies by coefficient * x^degree.
func (p *Poly) MultiplyByMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("gf256: negative degree")
	}
	if coefficient == 0 {
		return p.field.zero
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Mul(c, coefficient)
	}
	return newPoly(p.field, product)
}

// Divide divides p by other, returning [quotient, remainder].
func (p *Poly) Divide(other *Poly) [2]*Poly {
	if other.IsZero() {
		panic("gf256: divide by zero polynomial")
	}

	quotient := p.field.zero
	remainder := p

	leadingTerm := other.Coefficient(other.Degree())
	inverseLeading := p.field.Inverse(leadingTerm)

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Mul(remainder.Coefficient(remainder.Degree()), inverseLeading)
		term := other.MultiplyByMonomial(degreeDiff, scale)
		quotient = quotient.Add(p.field.BuildMonomial(degreeDiff, scale))
		remainder = remainder.Add(term)
	}

	return [2]*Poly{quotient, remainder}
}
