package matrix

import "github.com/qr-go/qrencode/qrspec"

const (
	formatInfoPoly = 0x537
	formatInfoMask = 0x5412
	versionInfoPoly = 0x1F25
)

// embedFormatInfo writes the 15-bit format information (ECC level + mask
// index, BCH(15,5)-protected and XORed with 0x5412) into both reserved
// locations: around the top-left finder, and split between the strips
// beside the top-right and bottom-left finders.
func embedFormatInfo(level qrspec.ErrorCorrectionLevel, maskPattern int, m *ByteMatrix) {
	typeInfo := (level.Bits() << 3) | maskPattern
	bchCode := calculateBCHCode(typeInfo, formatInfoPoly)
	bits := (typeInfo << 10) | bchCode
	bits ^= formatInfoMask

	coordinates := [15][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}

	for i := 0; i < 15; i++ {
		bit := byte((bits >> uint(i)) & 1)
		coord := coordinates[i]
		m.Set(coord[0], coord[1], bit)

		if i < 8 {
			m.Set(m.Width-1-i, 8, bit)
		} else {
			m.Set(8, m.Height-7+(i-8), bit)
		}
	}
}

// embedVersionInfo writes the 18-bit version information (BCH(18,6)) into
// the two 6x3 reserved blocks, for V >= 7 only.
func embedVersionInfo(version *qrspec.Version, m *ByteMatrix) {
	if version.Number < 7 {
		return
	}
	remainder := calculateBCHCode(version.Number, versionInfoPoly)
	bits := (version.Number << 12) | remainder

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := byte((bits >> uint(bitIndex)) & 1)
			bitIndex++
			m.Set(i, m.Height-11+j, bit)
			m.Set(m.Width-11+j, i, bit)
		}
	}
}

func calculateBCHCode(value, poly int) int {
	msbPoly := findMSBSet(poly)
	value <<= uint(msbPoly - 1)
	for findMSBSet(value) >= msbPoly {
		value ^= poly << uint(findMSBSet(value)-msbPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
