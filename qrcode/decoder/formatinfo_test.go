package decoder

import "testing"

func TestFormatInformationRoundTrip(t *testing.T) {
	for _, entry := range formatInfoDecodeLookup {
		pattern, want := entry[0], entry[1]
		fi := DecodeFormatInformation(pattern, pattern)
		if fi == nil {
			t.Fatalf("pattern %#x: decode failed", pattern)
		}
		wantLevel, _ := ECLevelForBits((want >> 3) & 0x03)
		wantMask := byte(want & 0x07)
		if fi.ECLevel != wantLevel || fi.DataMask != wantMask {
			t.Errorf("pattern %#x: got (%v,%d), want (%v,%d)", pattern, fi.ECLevel, fi.DataMask, wantLevel, wantMask)
		}
	}
}

func TestFormatInformationToleratesThreeBitFlips(t *testing.T) {
	for _, entry := range formatInfoDecodeLookup {
		pattern, want := entry[0], entry[1]
		for bit0 := 0; bit0 < 15; bit0++ {
			for bit1 := bit0 + 1; bit1 < 15; bit1++ {
				for bit2 := bit1 + 1; bit2 < 15; bit2++ {
					corrupted := pattern ^ (1 << bit0) ^ (1 << bit1) ^ (1 << bit2)
					fi := DecodeFormatInformation(corrupted, corrupted)
					if fi == nil {
						t.Fatalf("pattern %#x flipped at bits %d,%d,%d: decode failed", pattern, bit0, bit1, bit2)
					}
					wantLevel, _ := ECLevelForBits((want >> 3) & 0x03)
					wantMask := byte(want & 0x07)
					if fi.ECLevel != wantLevel || fi.DataMask != wantMask {
						t.Fatalf("pattern %#x flipped at bits %d,%d,%d: got (%v,%d), want (%v,%d)",
							pattern, bit0, bit1, bit2, fi.ECLevel, fi.DataMask, wantLevel, wantMask)
					}
				}
			}
		}
	}
}
