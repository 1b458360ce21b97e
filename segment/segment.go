// Package segment analyzes a text payload, picks the narrowest encoding
// mode and QR version that fit it, and builds the padded data-codeword
// bit stream those choices imply.
package segment

import (
	"errors"
	"fmt"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/eci"
	"github.com/qr-go/qrencode/qrspec"
)

// ErrCapacityExceeded is returned when a payload does not fit any version
// 1-40 at the requested ECC level, or does not fit the forced version.
var ErrCapacityExceeded = errors.New("segment: payload exceeds capacity")

// ErrInvalidInput is returned when Options.ForcedMode requires Numeric or
// Alphanumeric but the payload contains a character outside that mode.
var ErrInvalidInput = errors.New("segment: payload does not fit forced mode")

var errDataTooLarge = errors.New("segment: data bits exceed codeword capacity")

// Options controls mode, version, and ECI selection. The zero value
// analyzes the payload automatically with no ECI header and no forced
// version, matching the teacher's default (qrVersion == 0 means "choose").
type Options struct {
	// ForceUTF8 requests UTF-8 transcoding of a Byte-mode payload even
	// when it is already pure ASCII.
	ForceUTF8 bool

	// UTF8BOM prepends EF BB BF to a UTF-8-transcoded payload.
	UTF8BOM bool

	// ECI explicitly selects the Byte-mode code page. nil means "no
	// explicit ECI": the payload transcodes to UTF-8 only if it isn't
	// pure ASCII or ForceUTF8 is set; otherwise it is carried as-is.
	ECI *eci.Designator

	// ForcedVersion pins the QR version (1-40). 0 means "choose the
	// smallest version that fits".
	ForcedVersion int

	// StrictByteOnUTF8Force skips Numeric/Alphanumeric detection
	// entirely whenever ForceUTF8 or ECI is set, going straight to Byte
	// mode. Default false: detection still runs first, since ForceUTF8
	// and ECI only matter once a payload already lands in Byte mode.
	StrictByteOnUTF8Force bool

	// ForcedMode overrides automatic mode detection. Zero (the type's
	// unset value) means "detect automatically". A forced Numeric or
	// Alphanumeric mode that the payload's characters don't fit yields
	// ErrInvalidInput rather than silently falling back to Byte.
	ForcedMode qrspec.Mode
}

// Result is the outcome of mode analysis and bit-stream construction: the
// chosen mode and version, the ECI designator used (if any), and the
// fully padded data bits (length exactly 8*data_codewords(V,ECC)).
type Result struct {
	Mode    qrspec.Mode
	Version *qrspec.Version
	ECI     *eci.Designator
	Bits    *bitutil.BitArray
}

// Build runs mode analysis, version selection, and bit-stream
// construction over payload at the given ECC level.
func Build(payload string, level qrspec.ErrorCorrectionLevel, opts Options) (*Result, error) {
	mode, err := resolveMode(payload, opts)
	if err != nil {
		return nil, err
	}

	var dataBytes []byte
	var designator *eci.Designator
	var numChars int

	if mode == qrspec.ModeByte {
		encoded, d, err := transcodeByteSegment(payload, opts)
		if err != nil {
			return nil, err
		}
		dataBytes = encoded
		designator = d
		numChars = len(encoded)
	} else {
		numChars = len(payload)
	}

	headerBits := bitutil.NewBitArray(0)
	if designator != nil {
		headerBits.AppendBits(uint32(qrspec.ModeECI.Bits()), 4)
		headerBits.AppendBits(uint32(designator.Value), designator.DesignatorBits())
	}
	headerBits.AppendBits(uint32(mode.Bits()), 4)

	dataBits := bitutil.NewBitArray(0)
	switch mode {
	case qrspec.ModeNumeric:
		appendNumericBits(payload, dataBits)
	case qrspec.ModeAlphanumeric:
		appendAlphanumericBits(payload, dataBits)
	case qrspec.ModeByte:
		appendByteBits(dataBytes, dataBits)
	}

	version, err := chooseVersion(mode, headerBits, dataBits, numChars, level, opts.ForcedVersion)
	if err != nil {
		return nil, err
	}

	headerBits.AppendBits(uint32(numChars), mode.CharacterCountBits(version))
	headerBits.AppendBitArray(dataBits)

	ecBlocks := version.ECBlocksForLevel(level)
	numDataBytes := version.TotalCodewords - ecBlocks.TotalECCodewords()
	if err := terminateBits(numDataBytes, headerBits); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
	}

	return &Result{Mode: mode, Version: version, ECI: designator, Bits: headerBits}, nil
}

func resolveMode(payload string, opts Options) (qrspec.Mode, error) {
	if opts.ForcedMode != 0 {
		if !modeFits(payload, opts.ForcedMode) {
			return 0, fmt.Errorf("%w: mode %#x", ErrInvalidInput, opts.ForcedMode.Bits())
		}
		return opts.ForcedMode, nil
	}
	forcingText := opts.ForceUTF8 || opts.ECI != nil
	if forcingText && opts.StrictByteOnUTF8Force {
		return qrspec.ModeByte, nil
	}
	return ChooseMode(payload), nil
}

// transcodeByteSegment resolves the ECI designator (if any) and produces
// the final byte sequence for a Byte-mode segment, per spec.md §4.3 step 2.
func transcodeByteSegment(payload string, opts Options) ([]byte, *eci.Designator, error) {
	pureASCII := isPureASCII(payload)
	needsECI := opts.ECI != nil || opts.ForceUTF8 || !pureASCII
	if !needsECI {
		return []byte(payload), nil, nil
	}

	d := opts.ECI
	if d == nil {
		d = eci.UTF8
	}
	encoded, err := eci.Encode(payload, d)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: eci designator %s", eci.ErrUnsupported, d.Name)
	}
	if d == eci.UTF8 && opts.UTF8BOM {
		encoded = append([]byte{0xEF, 0xBB, 0xBF}, encoded...)
	}
	return encoded, d, nil
}

// chooseVersion picks the smallest version whose data capacity holds the
// header, character count, and data bits already computed, or validates
// a caller-forced version against that same capacity.
func chooseVersion(mode qrspec.Mode, headerBits, dataBits *bitutil.BitArray, numChars int, level qrspec.ErrorCorrectionLevel, forced int) (*qrspec.Version, error) {
	fits := func(v *qrspec.Version) bool {
		totalBits := headerBits.Size() + mode.CharacterCountBits(v) + dataBits.Size()
		ecBlocks := v.ECBlocksForLevel(level)
		numDataBytes := v.TotalCodewords - ecBlocks.TotalECCodewords()
		return totalBits <= numDataBytes*8
	}

	if forced > 0 {
		v, err := qrspec.ForNumber(forced)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		if !fits(v) {
			return nil, fmt.Errorf("%w: payload does not fit forced version %d", ErrCapacityExceeded, forced)
		}
		return v, nil
	}

	for number := 1; number <= 40; number++ {
		v, _ := qrspec.ForNumber(number)
		if fits(v) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: payload does not fit version 40", ErrCapacityExceeded)
}
