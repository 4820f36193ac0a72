package decoder

import "testing"

func TestVersionInformationRoundTrip(t *testing.T) {
	for i, pattern := range versionDecodeInfo {
		wantNumber := i + 7
		v := DecodeVersionInformation(pattern)
		if v == nil {
			t.Fatalf("pattern %#x: decode failed", pattern)
		}
		if v.Number != wantNumber {
			t.Errorf("pattern %#x: got version %d, want %d", pattern, v.Number, wantNumber)
		}
	}
}

func TestVersionInformationToleratesThreeBitFlips(t *testing.T) {
	for i, pattern := range versionDecodeInfo {
		wantNumber := i + 7
		for bit0 := 0; bit0 < 18; bit0++ {
			for bit1 := bit0 + 1; bit1 < 18; bit1++ {
				for bit2 := bit1 + 1; bit2 < 18; bit2++ {
					corrupted := pattern ^ (1 << bit0) ^ (1 << bit1) ^ (1 << bit2)
					v := DecodeVersionInformation(corrupted)
					if v == nil {
						t.Fatalf("pattern %#x flipped at bits %d,%d,%d: decode failed", pattern, bit0, bit1, bit2)
					}
					if v.Number != wantNumber {
						t.Fatalf("pattern %#x flipped at bits %d,%d,%d: got version %d, want %d", pattern, bit0, bit1, bit2, v.Number, wantNumber)
					}
				}
			}
		}
	}
}

func TestGetVersionForNumberRange(t *testing.T) {
	if _, err := GetVersionForNumber(0); err == nil {
		t.Error("expected error for version 0")
	}
	if _, err := GetVersionForNumber(41); err == nil {
		t.Error("expected error for version 41")
	}
	v, err := GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.DimensionForVersion() != 21 {
		t.Errorf("version 1 dimension = %d, want 21", v.DimensionForVersion())
	}
}
