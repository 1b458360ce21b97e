// Package gf256 implements arithmetic over the Galois Field used by QR
// code Reed-Solomon error correction: GF(256) reduced by the primitive
// polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D), generator 2.
package gf256

import "fmt"

// Field represents a Galois Field of the given size, built from a
// primitive polynomial.
type Field struct {
	expTable      []int
	logTable      []int
	zero          *Poly
	one           *Poly
	size          int
	primitive     int
	generatorBase int
}

// QR is the GF(256) field defined by ISO/IEC 18004: primitive polynomial
// 0x11D, generator base 0 (alpha^0 is the first root used by the RS
// generator polynomial in §4.5).
var QR = New(0x011D, 256, 0)

// New builds a Field of the given size from a primitive polynomial. size
// must be a power of two; primitive must be irreducible over GF(2) of the
// matching degree.
func New(primitive, size, generatorBase int) *Field {
	f := &Field{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		f.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		f.logTable[f.expTable[i]] = i
	}

	f.zero = newPoly(f, []int{0})
	f.one = newPoly(f, []int{1})

	return f
}

// BuildMonomial returns coefficient * x^degree.
func (f *Field) BuildMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("gf256: negative degree")
	}
	if coefficient == 0 {
		return f.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newPoly(f, coefficients)
}

// AddOrSubtract computes a XOR b; addition and subtraction coincide in
// GF(2^n).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// ExpOf returns 2^a (alpha^a) in this field.
func (f *Field) ExpOf(a int) int {
	return f.expTable[a]
}

// LogOf returns the discrete log base 2 of a non-zero field element.
func (f *Field) LogOf(a int) int {
	if a == 0 {
		panic("gf256: log(0)")
	}
	return f.logTable[a]
}

// Exp is an alias for ExpOf, matching the teacher's original naming.
func (f *Field) Exp(a int) int { return f.ExpOf(a) }

// Log is an alias for LogOf, matching the teacher's original naming.
func (f *Field) Log(a int) int { return f.LogOf(a) }

// Inverse returns the multiplicative inverse of a non-zero element.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("gf256: inverse(0)")
	}
	return f.expTable[f.size-f.logTable[a]-1]
}

// Mul returns a * b in this field: zero if either operand is zero,
// otherwise exp[(log(a)+log(b)) mod (size-1)].
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%(f.size-1)]
}

// Multiply is an alias for Mul, matching the teacher's original naming.
func (f *Field) Multiply(a, b int) int { return f.Mul(a, b) }

// Size returns the number of elements in the field.
func (f *Field) Size() int { return f.size }

// GeneratorBase returns the generator base used when building RS
// generator polynomials over this field.
func (f *Field) GeneratorBase() int { return f.generatorBase }

// String returns a human-readable description of the field.
func (f *Field) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", f.primitive, f.size)
}
