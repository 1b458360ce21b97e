package qrspec

// Mode is a QR data encoding mode. The core only ever emits Numeric,
// Alphanumeric, Byte, and (as a Byte-mode prefix) ECI — Kanji is a
// non-goal (spec.md §1).
type Mode int

const (
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeECI          Mode = 0x07
)

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

// characterCountBits holds [v1-9, v10-26, v27-40] widths per mode.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
}

// CharacterCountBits returns the character-count-indicator width for this
// mode at the given version.
func (m Mode) CharacterCountBits(version *Version) int {
	var offset int
	switch {
	case version.Number <= 9:
		offset = 0
	case version.Number <= 26:
		offset = 1
	default:
		offset = 2
	}
	return characterCountBits[m][offset]
}
