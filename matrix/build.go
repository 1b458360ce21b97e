// Package matrix places an interleaved data/EC bit stream into a QR module
// grid: function patterns, reserved format/version strips, the data
// stream itself in its zig-zag order, mask scoring and selection, and the
// format/version BCH strings.
package matrix

import (
	"errors"
	"fmt"

	"github.com/qr-go/qrencode/qrspec"
)

// ErrInternalInvariantViolated signals a post-condition failure during
// layout: a programming error in this module, not a caller error.
var ErrInternalInvariantViolated = errors.New("matrix: internal invariant violated")

// Symbol is a finished, laid-out QR matrix together with the parameters
// that produced it.
type Symbol struct {
	Version     *qrspec.Version
	ECLevel     qrspec.ErrorCorrectionLevel
	MaskPattern int
	Matrix      *ByteMatrix
}

// Build lays out a finished symbol from the already-interleaved data/EC
// bit stream (spec.md §4.7-§4.9). forcedMask selects a specific mask
// pattern for testing; pass -1 to select automatically by penalty score
// (spec.md §6: "mask selection is automatic, caller cannot override" —
// this parameter is not reachable from the exported qrencode.Encode).
func Build(dataBits bitReader, level qrspec.ErrorCorrectionLevel, version *qrspec.Version, forcedMask int) (*Symbol, error) {
	if err := verifyDataBitsFillCapacity(dataBits, level, version); err != nil {
		return nil, err
	}

	dimension := version.Dimension()
	m := NewByteMatrix(dimension, dimension)

	maskPattern := forcedMask
	if maskPattern < 0 || maskPattern >= numMaskPatterns {
		maskPattern = choosePattern(dataBits, level, version, m)
	}
	buildMatrix(dataBits, level, version, maskPattern, m)

	if err := verifyFullyPopulated(m); err != nil {
		return nil, err
	}

	return &Symbol{Version: version, ECLevel: level, MaskPattern: maskPattern, Matrix: m}, nil
}

// verifyDataBitsFillCapacity checks spec.md §8 invariant 1 at its actual
// source: embedDataBits zero-pads any shortfall rather than leaving cells
// at the 0xFF marker, so an underfilled stream would otherwise pass
// verifyFullyPopulated silently. The interleaved stream's size must match
// this version's total codeword bits plus its remainder bits exactly.
func verifyDataBitsFillCapacity(dataBits bitReader, level qrspec.ErrorCorrectionLevel, version *qrspec.Version) error {
	want := version.TotalCodewords*8 + version.RemainderBits()
	if dataBits.Size() != want {
		return fmt.Errorf("%w: data bit stream has %d bits, version %d level %v needs exactly %d", ErrInternalInvariantViolated, dataBits.Size(), version.Number, level, want)
	}
	return nil
}

// buildMatrix lays out one candidate: function patterns, format/version
// info, then the data stream under the given mask.
func buildMatrix(dataBits bitReader, level qrspec.ErrorCorrectionLevel, version *qrspec.Version, maskPattern int, m *ByteMatrix) {
	m.Clear(0xFF)
	embedBasicPatterns(version, m)
	embedFormatInfo(level, maskPattern, m)
	embedVersionInfo(version, m)
	embedDataBits(dataBits, maskPattern, m)
}

// verifyFullyPopulated checks spec.md §8 invariant 1: every cell ends up
// 0 or 1, never the 0xFF empty marker, after data streaming.
func verifyFullyPopulated(m *ByteMatrix) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Get(x, y) == 0xFF {
				return fmt.Errorf("%w: cell (%d,%d) unpopulated after layout", ErrInternalInvariantViolated, x, y)
			}
		}
	}
	return nil
}
