package segment

import "github.com/qr-go/qrencode/qrspec"

// alphanumericTable maps ASCII code points to their QR alphanumeric value,
// or -1 if the character is outside the 45-character set.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alphanumericValue returns the QR alphanumeric code for a rune, or -1 if
// it falls outside the 45-character set (or isn't ASCII).
func alphanumericValue(r rune) int {
	if r < 0 || r >= 128 {
		return -1
	}
	return alphanumericTable[r]
}

// modeFits reports whether every rune in payload is representable in the
// given mode, for validating a caller-forced mode (spec.md §7
// InvalidInput: "an explicit Numeric/Alphanumeric mode is forced by the
// caller but the payload contains disallowed characters").
func modeFits(payload string, mode qrspec.Mode) bool {
	switch mode {
	case qrspec.ModeNumeric:
		for _, r := range payload {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	case qrspec.ModeAlphanumeric:
		for _, r := range payload {
			if alphanumericValue(r) == -1 {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func isPureASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ChooseMode classifies a payload the way spec.md §4.3 step 1 describes:
// Numeric if every rune is a digit, Alphanumeric if every rune is in the
// 45-character QR set, Byte otherwise (including the empty payload).
func ChooseMode(payload string) qrspec.Mode {
	hasNumeric := false
	hasAlphanumeric := false
	for _, r := range payload {
		switch {
		case r >= '0' && r <= '9':
			hasNumeric = true
		case alphanumericValue(r) != -1:
			hasAlphanumeric = true
		default:
			return qrspec.ModeByte
		}
	}
	if hasAlphanumeric {
		return qrspec.ModeAlphanumeric
	}
	if hasNumeric {
		return qrspec.ModeNumeric
	}
	return qrspec.ModeByte
}
