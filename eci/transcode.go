package eci

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encode transcodes a UTF-8 Go string into the byte sequence for the given
// ECI designator's code page, the way charset/guess.go in the retrieved
// zxing-go port transcodes byte sequences using golang.org/x/text for
// decoding; here we run the encoder side of the same library for the two
// code pages ECI designators spec.md names explicitly (ISO-8859-1 and
// ISO-8859-2) plus the UTF8 designator, which is the identity transform.
func Encode(s string, d *Designator) ([]byte, error) {
	switch d {
	case UTF8:
		return []byte(s), nil
	case ISO8859_1:
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(s))
		return out, err
	case ISO8859_2:
		out, _, err := transform.Bytes(charmap.ISO8859_2.NewEncoder(), []byte(s))
		return out, err
	default:
		return nil, ErrUnsupported
	}
}
