// Package qrencode encodes a text or byte payload into a QR Code symbol
// (ISO/IEC 18004, versions 1-40, model 2): mode analysis, bit-stream
// construction, Reed-Solomon error correction, block interleaving, matrix
// layout, mask selection, and format/version information, producing a
// MatrixContainer renderers can consume.
package qrencode

import (
	"errors"
	"fmt"

	"github.com/qr-go/qrencode/container"
	"github.com/qr-go/qrencode/eci"
	"github.com/qr-go/qrencode/matrix"
	"github.com/qr-go/qrencode/qrspec"
	"github.com/qr-go/qrencode/segment"
)

// re-export the four ECC levels so callers need not import qrspec for the
// common case.
const (
	ECLevelL = qrspec.ECLevelL
	ECLevelM = qrspec.ECLevelM
	ECLevelQ = qrspec.ECLevelQ
	ECLevelH = qrspec.ECLevelH
)

// re-export the three serialization wrappings for the same reason.
const (
	Uncompressed = container.Uncompressed
	Deflate      = container.Deflate
	GZip         = container.GZip
)

// Options configures one Encode call (spec.md §6's conceptual encode()
// parameter list).
type Options struct {
	// ECCLevel is one of ECLevelL/M/Q/H.
	ECCLevel qrspec.ErrorCorrectionLevel

	// ForceUTF8 requests UTF-8 transcoding of a Byte-mode payload even
	// when it is already pure ASCII.
	ForceUTF8 bool

	// UTF8BOM prepends EF BB BF to a UTF-8-transcoded payload.
	UTF8BOM bool

	// ECI explicitly selects the Byte-mode code page (eci.ISO8859_1,
	// eci.ISO8859_2, or eci.UTF8). Leave nil for the default: transcode
	// to UTF-8 only if the payload isn't pure ASCII or ForceUTF8 is set.
	ECI *eci.Designator

	// ForcedVersion pins the QR version (1-40). Zero means "choose the
	// smallest version that fits".
	ForcedVersion int

	// StrictByteOnUTF8Force skips Numeric/Alphanumeric detection
	// whenever ForceUTF8 or ECI is set, going straight to Byte mode.
	StrictByteOnUTF8Force bool

	// ForcedMode overrides automatic mode detection. Leave at the zero
	// value to detect automatically. A forced Numeric or Alphanumeric
	// mode that rejects the payload's characters yields ErrInvalidInput.
	ForcedMode qrspec.Mode
}

// Encode runs the full pipeline: mode analysis and bit-stream
// construction, RS encoding and block interleaving, matrix layout with
// automatic mask selection, and format/version information, returning the
// finished MatrixContainer.
func Encode(payload string, opts Options) (*container.MatrixContainer, error) {
	seg, err := segment.Build(payload, opts.ECCLevel, segment.Options{
		ForceUTF8:             opts.ForceUTF8,
		UTF8BOM:               opts.UTF8BOM,
		ECI:                   opts.ECI,
		ForcedVersion:         opts.ForcedVersion,
		StrictByteOnUTF8Force: opts.StrictByteOnUTF8Force,
		ForcedMode:            opts.ForcedMode,
	})
	if err != nil {
		return nil, translateSegmentError(err)
	}

	interleaved, err := interleave(seg.Bits, seg.Version, opts.ECCLevel)
	if err != nil {
		return nil, err
	}

	sym, err := matrix.Build(interleaved, opts.ECCLevel, seg.Version, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternalInvariantViolated, err)
	}

	return container.FromSymbol(sym), nil
}

// Deserialize parses a MatrixContainer from its wire format (spec.md
// §4.10, §6), translating container-level failures to ErrCorruptSerialization.
func Deserialize(data []byte, compression container.Compression) (*container.MatrixContainer, error) {
	c, err := container.Deserialize(data, compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSerialization, err)
	}
	return c, nil
}

func translateSegmentError(err error) error {
	switch {
	case errors.Is(err, segment.ErrCapacityExceeded):
		return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	case errors.Is(err, segment.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, eci.ErrUnsupported):
		return fmt.Errorf("%w: %v", ErrUnsupportedEci, err)
	default:
		return err
	}
}
