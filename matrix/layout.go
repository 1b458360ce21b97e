package matrix

import "github.com/qr-go/qrencode/qrspec"

// positionDetectionPattern is the 7x7 finder pattern.
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// positionAdjustmentPattern is the 5x5 alignment pattern.
var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func embedBasicPatterns(version *qrspec.Version, m *ByteMatrix) {
	embedPositionDetectionPattern(0, 0, m)
	embedPositionDetectionPattern(m.Width-7, 0, m)
	embedPositionDetectionPattern(0, m.Height-7, m)

	embedHorizontalSeparator(0, 7, m)
	embedHorizontalSeparator(m.Width-8, 7, m)
	embedHorizontalSeparator(0, m.Height-8, m)

	embedVerticalSeparator(7, 0, m)
	embedVerticalSeparator(m.Width-8, 0, m)
	embedVerticalSeparator(7, m.Height-7, m)

	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, m)
	}

	embedTimingPatterns(m)

	// Dark module at (4V+9, 8) in (row, col), i.e. (col=8, row=4V+9).
	m.Set(8, m.Height-8, 1)
}

func embedPositionDetectionPattern(xStart, yStart int, m *ByteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			m.Set(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, m *ByteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < m.Width {
			m.Set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, m *ByteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < m.Height {
			m.Set(xStart, yStart+y, 0)
		}
	}
}

func embedPositionAdjustmentPatterns(version *qrspec.Version, m *ByteMatrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			if m.Get(cx, cy) != 0xFF {
				continue // overlaps a finder pattern
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					m.Set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(m *ByteMatrix) {
	for i := 8; i < m.Width-8; i++ {
		bit := byte((i + 1) % 2)
		if m.Get(i, 6) == 0xFF {
			m.Set(i, 6, bit)
		}
		if m.Get(6, i) == 0xFF {
			m.Set(6, i, bit)
		}
	}
}

// embedDataBits streams the interleaved bit sequence into every
// unreserved cell in the zig-zag column order spec.md §4.7 describes,
// applying the chosen mask as it goes.
func embedDataBits(dataBits bitReader, maskPattern int, m *ByteMatrix) {
	bitIndex := 0
	dimension := m.Height

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j-- // skip timing column
		}
		for count := 0; count < dimension; count++ {
			upward := (((dimension - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if m.Get(x, i) == 0xFF {
					var bit bool
					if bitIndex < dataBits.Size() {
						bit = dataBits.Get(bitIndex)
						bitIndex++
					}
					if qrspec.Masks[maskPattern](i, x) {
						bit = !bit
					}
					m.SetBool(x, i, bit)
				}
			}
		}
	}
}

// bitReader is the minimal surface embedDataBits needs from a bit buffer.
type bitReader interface {
	Size() int
	Get(i int) bool
}
