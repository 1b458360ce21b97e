package segment

import "github.com/qr-go/qrencode/bitutil"

// appendNumericBits packs digits 3 at a time into 10-bit groups, with a
// 7-bit or 4-bit tail for a remainder of 2 or 1 digits (spec.md §4.4 item 4).
func appendNumericBits(content string, bits *bitutil.BitArray) {
	length := len(content)
	i := 0
	for i < length {
		num1 := int(content[i] - '0')
		switch {
		case i+2 < length:
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		case i+1 < length:
			num2 := int(content[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		default:
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
}

// appendAlphanumericBits packs characters 2 at a time into 11-bit groups,
// with a 6-bit tail for a single leftover character.
func appendAlphanumericBits(content string, bits *bitutil.BitArray) {
	length := len(content)
	i := 0
	for i < length {
		code1 := alphanumericValue(rune(content[i]))
		if i+1 < length {
			code2 := alphanumericValue(rune(content[i+1]))
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
}

// appendByteBits packs each byte as-is, MSB first.
func appendByteBits(data []byte, bits *bitutil.BitArray) {
	for _, b := range data {
		bits.AppendBits(uint32(b), 8)
	}
}

// terminateBits appends the terminator (up to 4 zero bits), pads to a byte
// boundary, then fills the remaining data codewords with the alternating
// 0xEC/0x11 pad-byte sequence (spec.md §4.4 items 5-7).
func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return errDataTooLarge
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}
