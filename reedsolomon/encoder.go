// Package reedsolomon computes QR code error-correction codewords: for a
// block of data bytes and a required EC-codeword count k, it derives the
// degree-k generator polynomial G(x) = prod(x - alpha^i) for i in [0,k) and
// returns the k-coefficient remainder of D(x)*x^k divided by G(x).
package reedsolomon

import "github.com/qr-go/qrencode/gf256"

// Encoder performs Reed-Solomon encoding over a fixed Galois Field.
type Encoder struct {
	field *gf256.Field
}

// NewEncoder creates an Encoder over the given field.
func NewEncoder(field *gf256.Field) *Encoder {
	return &Encoder{field: field}
}

// Encode appends ecBytes error-correction codewords to toEncode, which
// must already have dataBytes+ecBytes slots: the data occupies the first
// len(toEncode)-ecBytes slots on entry, the EC codewords are written into
// the remainder.
func (e *Encoder) Encode(toEncode []int, ecBytes int) {
	if ecBytes == 0 {
		panic("reedsolomon: no error correction bytes requested")
	}
	dataBytes := len(toEncode) - ecBytes
	if dataBytes <= 0 {
		panic("reedsolomon: no data bytes provided")
	}

	generator := generatorPolynomial(e.field, ecBytes)
	infoCoefficients := make([]int, dataBytes)
	copy(infoCoefficients, toEncode[:dataBytes])
	info := gf256.NewPoly(e.field, infoCoefficients)
	info = info.MultiplyByMonomial(ecBytes, 1)
	remainder := info.Divide(generator)[1]

	coefficients := remainder.Coefficients()
	numZero := ecBytes - len(coefficients)
	for i := 0; i < numZero; i++ {
		toEncode[dataBytes+i] = 0
	}
	copy(toEncode[dataBytes+numZero:], coefficients)
}
