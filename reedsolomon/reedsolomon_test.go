package reedsolomon

import (
	"testing"

	"github.com/qr-go/qrencode/gf256"
)

// evaluatesToZero checks the RS codeword invariant from spec §8 item 7:
// D ‖ EC, read as a polynomial, must evaluate to zero at alpha^0..alpha^(k-1).
func evaluatesToZero(t *testing.T, field *gf256.Field, codeword []int, k int) {
	t.Helper()
	poly := gf256.NewPoly(field, codeword)
	for i := 0; i < k; i++ {
		root := field.ExpOf(i + field.GeneratorBase())
		if got := poly.EvaluateAt(root); got != 0 {
			t.Errorf("codeword evaluated at alpha^%d = %d, want 0", i, got)
		}
	}
}

func TestEncodeSatisfiesRSInvariant(t *testing.T) {
	for _, tc := range []struct{ dataSize, ecSize int }{
		{10, 7}, {1, 17}, {19, 7}, {5, 4}, {68, 30},
	} {
		toEncode := make([]int, tc.dataSize+tc.ecSize)
		for i := 0; i < tc.dataSize; i++ {
			toEncode[i] = (i*37 + 5) & 0xFF
		}
		NewEncoder(gf256.QR).Encode(toEncode, tc.ecSize)
		evaluatesToZero(t, gf256.QR, toEncode, tc.ecSize)
	}
}

func TestEncodePreservesDataBytes(t *testing.T) {
	dataSize, ecSize := 16, 10
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = i + 1
	}
	NewEncoder(gf256.QR).Encode(toEncode, ecSize)
	for i := 0; i < dataSize; i++ {
		if toEncode[i] != i+1 {
			t.Errorf("data[%d] = %d, want %d", i, toEncode[i], i+1)
		}
	}
}

func TestGeneratorPolynomialIsCachedAndDeterministic(t *testing.T) {
	a := generatorPolynomial(gf256.QR, 13)
	b := generatorPolynomial(gf256.QR, 13)
	if a != b {
		t.Error("expected generatorPolynomial to return the cached instance on repeat calls")
	}

	toEncode1 := []int{1, 2, 3, 4, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	toEncode2 := []int{1, 2, 3, 4, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	NewEncoder(gf256.QR).Encode(toEncode1, 12)
	NewEncoder(gf256.QR).Encode(toEncode2, 12)
	for i := range toEncode1 {
		if toEncode1[i] != toEncode2[i] {
			t.Fatalf("encode is not deterministic at index %d: %d != %d", i, toEncode1[i], toEncode2[i])
		}
	}
}

func TestEncodePanicsOnZeroECBytes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for ecBytes=0")
		}
	}()
	NewEncoder(gf256.QR).Encode([]int{1, 2, 3}, 0)
}
