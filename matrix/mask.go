package matrix

import (
	"math"

	"github.com/qr-go/qrencode/qrspec"
)

const numMaskPatterns = 8

// choosePattern embeds dataBits under each of the 8 mask patterns in turn,
// scores the result, and returns the argmin pattern index (ties broken by
// the lowest index, since the loop only replaces on strictly smaller
// penalty).
func choosePattern(dataBits bitReader, level qrspec.ErrorCorrectionLevel, version *qrspec.Version, m *ByteMatrix) int {
	minPenalty := math.MaxInt32
	best := 0
	for i := 0; i < numMaskPatterns; i++ {
		buildMatrix(dataBits, level, version, i, m)
		penalty := calculatePenalty(m)
		if penalty < minPenalty {
			minPenalty = penalty
			best = i
		}
	}
	return best
}

func calculatePenalty(m *ByteMatrix) int {
	return penaltyRule1(m) + penaltyRule2(m) + penaltyRule3(m) + penaltyRule4(m)
}

// penaltyRule1: runs of >=5 same-colored modules in a row or column.
func penaltyRule1(m *ByteMatrix) int {
	return penaltyRule1Direction(m, true) + penaltyRule1Direction(m, false)
}

func penaltyRule1Direction(m *ByteMatrix, horizontal bool) int {
	penalty := 0
	iLimit, jLimit := m.Height, m.Width
	if !horizontal {
		iLimit, jLimit = m.Width, m.Height
	}
	for i := 0; i < iLimit; i++ {
		numSame := 0
		prev := byte(255)
		for j := 0; j < jLimit; j++ {
			var bit byte
			if horizontal {
				bit = m.Get(j, i)
			} else {
				bit = m.Get(i, j)
			}
			if bit == prev {
				numSame++
			} else {
				if numSame >= 5 {
					penalty += 3 + (numSame - 5)
				}
				numSame = 1
				prev = bit
			}
		}
		if numSame >= 5 {
			penalty += 3 + (numSame - 5)
		}
	}
	return penalty
}

// penaltyRule2: every 2x2 same-colored block.
func penaltyRule2(m *ByteMatrix) int {
	penalty := 0
	for y := 0; y < m.Height-1; y++ {
		for x := 0; x < m.Width-1; x++ {
			value := m.Get(x, y)
			if value == m.Get(x+1, y) && value == m.Get(x, y+1) && value == m.Get(x+1, y+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// penaltyRule3: the 1011101 finder-like pattern with 4 light modules
// leading or trailing, searched as the 11-cell patterns
// 10111010000 / 00001011101.
func penaltyRule3(m *ByteMatrix) int {
	penalty := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if x+6 < m.Width {
				if m.Get(x, y) == 1 && m.Get(x+1, y) == 0 &&
					m.Get(x+2, y) == 1 && m.Get(x+3, y) == 1 &&
					m.Get(x+4, y) == 1 && m.Get(x+5, y) == 0 &&
					m.Get(x+6, y) == 1 {
					leading := x+10 < m.Width && m.Get(x+7, y) == 0 && m.Get(x+8, y) == 0 &&
						m.Get(x+9, y) == 0 && m.Get(x+10, y) == 0
					trailing := x >= 4 && m.Get(x-1, y) == 0 && m.Get(x-2, y) == 0 &&
						m.Get(x-3, y) == 0 && m.Get(x-4, y) == 0
					if leading || trailing {
						penalty += 40
					}
				}
			}
			if y+6 < m.Height {
				if m.Get(x, y) == 1 && m.Get(x, y+1) == 0 &&
					m.Get(x, y+2) == 1 && m.Get(x, y+3) == 1 &&
					m.Get(x, y+4) == 1 && m.Get(x, y+5) == 0 &&
					m.Get(x, y+6) == 1 {
					leading := y+10 < m.Height && m.Get(x, y+7) == 0 && m.Get(x, y+8) == 0 &&
						m.Get(x, y+9) == 0 && m.Get(x, y+10) == 0
					trailing := y >= 4 && m.Get(x, y-1) == 0 && m.Get(x, y-2) == 0 &&
						m.Get(x, y-3) == 0 && m.Get(x, y-4) == 0
					if leading || trailing {
						penalty += 40
					}
				}
			}
		}
	}
	return penalty
}

// penaltyRule4: deviation of the dark-module percentage from 50%.
func penaltyRule4(m *ByteMatrix) int {
	darkCells := 0
	total := m.Height * m.Width
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Get(x, y) == 1 {
				darkCells++
			}
		}
	}
	variance := abs(darkCells*2-total) * 10 / total
	return variance * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
