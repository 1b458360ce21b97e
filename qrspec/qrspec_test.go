package qrspec

import "testing"

func TestBlockLayoutSumsToTotalCodewords(t *testing.T) {
	for num := 1; num <= 40; num++ {
		v, err := ForNumber(num)
		if err != nil {
			t.Fatalf("version %d: %v", num, err)
		}
		for level := ECLevelL; level <= ECLevelH; level++ {
			blocks := v.ECBlocksForLevel(level)
			dataTotal := 0
			for _, g := range blocks.Groups {
				dataTotal += g.Count * g.DataCodewords
			}
			ecTotal := blocks.TotalECCodewords()
			if dataTotal+ecTotal != v.TotalCodewords {
				t.Errorf("version %d level %s: data(%d)+ec(%d) = %d, want TotalCodewords %d",
					num, level, dataTotal, ecTotal, dataTotal+ecTotal, v.TotalCodewords)
			}
			if len(blocks.Groups) == 2 {
				g1, g2 := blocks.Groups[0], blocks.Groups[1]
				if g2.DataCodewords != g1.DataCodewords+1 {
					t.Errorf("version %d level %s: group2 data codewords = %d, want group1+1 = %d",
						num, level, g2.DataCodewords, g1.DataCodewords+1)
				}
			}
		}
	}
}

func TestForNumberRejectsOutOfRange(t *testing.T) {
	if _, err := ForNumber(0); err == nil {
		t.Error("expected error for version 0")
	}
	if _, err := ForNumber(41); err == nil {
		t.Error("expected error for version 41")
	}
}

func TestDimensionFormula(t *testing.T) {
	v1, _ := ForNumber(1)
	if v1.Dimension() != 21 {
		t.Errorf("version 1 dimension = %d, want 21", v1.Dimension())
	}
	v40, _ := ForNumber(40)
	if v40.Dimension() != 177 {
		t.Errorf("version 40 dimension = %d, want 177", v40.Dimension())
	}
}

func TestNoAlignmentPatternsAtVersion1(t *testing.T) {
	v1, _ := ForNumber(1)
	if len(v1.AlignmentPatternCenters) != 0 {
		t.Errorf("version 1 should have no alignment pattern centers, got %v", v1.AlignmentPatternCenters)
	}
}

func TestManyAlignmentPatternsAtHighVersions(t *testing.T) {
	v32, _ := ForNumber(32)
	if len(v32.AlignmentPatternCenters) != 6 {
		t.Errorf("version 32 should have 6 alignment pattern centers, got %d", len(v32.AlignmentPatternCenters))
	}
}

func TestRemainderBitsKnownValues(t *testing.T) {
	cases := map[int]int{1: 0, 2: 7, 7: 0, 14: 3, 21: 4, 28: 3, 35: 0, 40: 0}
	for version, want := range cases {
		v, _ := ForNumber(version)
		if got := v.RemainderBits(); got != want {
			t.Errorf("version %d remainder bits = %d, want %d", version, got, want)
		}
	}
}

func TestCharacterCountBitsByVersionRange(t *testing.T) {
	v1, _ := ForNumber(1)
	v10, _ := ForNumber(10)
	v27, _ := ForNumber(27)
	if got := ModeNumeric.CharacterCountBits(v1); got != 10 {
		t.Errorf("numeric ccw(v1) = %d, want 10", got)
	}
	if got := ModeAlphanumeric.CharacterCountBits(v10); got != 11 {
		t.Errorf("alphanumeric ccw(v10) = %d, want 11", got)
	}
	if got := ModeByte.CharacterCountBits(v27); got != 16 {
		t.Errorf("byte ccw(v27) = %d, want 16", got)
	}
}

func TestFunctionPatternMaskCoversFinderPatterns(t *testing.T) {
	v, _ := ForNumber(7)
	mask := v.BuildFunctionPatternMask()
	if !mask.Get(0, 0) || !mask.Get(8, 8) {
		t.Error("top-left finder + format strip should be reserved")
	}
	dim := v.Dimension()
	if !mask.Get(dim-1, 0) {
		t.Error("top-right finder should be reserved")
	}
	if !mask.Get(0, dim-1) {
		t.Error("bottom-left finder should be reserved")
	}
}
