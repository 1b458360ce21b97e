package matrix

import (
	"errors"
	"testing"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrspec"
)

func fullBits(n int) *bitutil.BitArray {
	ba := bitutil.NewBitArray(0)
	for i := 0; i < n; i++ {
		ba.AppendBit(i%2 == 0)
	}
	return ba
}

func TestBuildProducesCorrectDimension(t *testing.T) {
	for _, num := range []int{1, 7, 32, 40} {
		version, _ := qrspec.ForNumber(num)
		numBits := version.TotalCodewords*8 + version.RemainderBits()
		symbol, err := Build(fullBits(numBits), qrspec.ECLevelM, version, -1)
		if err != nil {
			t.Fatalf("version %d: %v", num, err)
		}
		want := 17 + 4*num
		if symbol.Matrix.Width != want || symbol.Matrix.Height != want {
			t.Errorf("version %d: dimension = %dx%d, want %dx%d", num, symbol.Matrix.Width, symbol.Matrix.Height, want, want)
		}
	}
}

func TestBuildEveryCellPopulated(t *testing.T) {
	version, _ := qrspec.ForNumber(5)
	numBits := version.TotalCodewords*8 + version.RemainderBits()
	symbol, err := Build(fullBits(numBits), qrspec.ECLevelQ, version, -1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for y := 0; y < symbol.Matrix.Height; y++ {
		for x := 0; x < symbol.Matrix.Width; x++ {
			if v := symbol.Matrix.Get(x, y); v != 0 && v != 1 {
				t.Fatalf("cell (%d,%d) = %d, want 0 or 1", x, y, v)
			}
		}
	}
}

func TestFunctionPatternsStableAcrossMasks(t *testing.T) {
	version, _ := qrspec.ForNumber(3)
	numBits := version.TotalCodewords*8 + version.RemainderBits()
	mask := version.BuildFunctionPatternMask()

	// The two format-information copies encode the mask index, so they
	// differ between patterns; every other reserved cell must not.
	dim := version.Dimension()
	isFormatInfo := func(x, y int) bool {
		return (y == 8 && x != 6 && (x <= 8 || x >= dim-8)) ||
			(x == 8 && y != 6 && (y <= 8 || y >= dim-7))
	}

	var reference *ByteMatrix
	for pattern := 0; pattern < numMaskPatterns; pattern++ {
		symbol, err := Build(fullBits(numBits), qrspec.ECLevelL, version, pattern)
		if err != nil {
			t.Fatalf("pattern %d: %v", pattern, err)
		}
		if reference == nil {
			reference = symbol.Matrix
			continue
		}
		for y := 0; y < version.Dimension(); y++ {
			for x := 0; x < version.Dimension(); x++ {
				if mask.Get(x, y) && !isFormatInfo(x, y) && reference.Get(x, y) != symbol.Matrix.Get(x, y) {
					t.Fatalf("pattern %d: reserved cell (%d,%d) changed: %d vs %d", pattern, x, y, reference.Get(x, y), symbol.Matrix.Get(x, y))
				}
			}
		}
	}
}

func TestMaskSelectionIsDeterministicArgmin(t *testing.T) {
	version, _ := qrspec.ForNumber(2)
	bits := fullBits(version.TotalCodewords*8 + version.RemainderBits())

	s1, err := Build(bits, qrspec.ECLevelH, version, -1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s2, err := Build(bits, qrspec.ECLevelH, version, -1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s1.MaskPattern != s2.MaskPattern {
		t.Errorf("mask selection nondeterministic: %d vs %d", s1.MaskPattern, s2.MaskPattern)
	}

	m := NewByteMatrix(version.Dimension(), version.Dimension())
	best := choosePattern(bits, qrspec.ECLevelH, version, m)
	if best != s1.MaskPattern {
		t.Errorf("choosePattern = %d, Build selected %d", best, s1.MaskPattern)
	}
}

func TestUnderfilledDataStreamViolatesInvariant(t *testing.T) {
	version, _ := qrspec.ForNumber(1)
	// Far fewer bits than version 1-H's data capacity: embedDataBits
	// would silently zero-pad the shortfall, so the check must compare
	// dataBits.Size() against capacity rather than scan for 0xFF cells.
	_, err := Build(fullBits(8), qrspec.ECLevelH, version, 0)
	if !errors.Is(err, ErrInternalInvariantViolated) {
		t.Fatalf("err = %v, want ErrInternalInvariantViolated", err)
	}
}
