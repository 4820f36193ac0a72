package detector

import "testing"

func pattern(x, y, size float64) *FinderPattern {
	return &FinderPattern{X: x, Y: y, EstimatedModuleSize: size, Count: 1}
}

func TestSelectBestPatternsPassesThroughExactlyThree(t *testing.T) {
	in := []*FinderPattern{pattern(0, 0, 4), pattern(10, 0, 4), pattern(0, 10, 4)}
	out := selectBestPatterns(in)
	if len(out) != 3 {
		t.Fatalf("got %d patterns, want 3", len(out))
	}
}

func TestSelectBestPatternsRejectsTooFew(t *testing.T) {
	in := []*FinderPattern{pattern(0, 0, 4), pattern(10, 0, 4)}
	if out := selectBestPatterns(in); out != nil {
		t.Fatalf("expected nil for fewer than 3 candidates, got %v", out)
	}
}

// TestSelectBestPatternsPicksIsoscelesRightTriple builds a clean isosceles
// right triple (the TL, TR, BL corners of a symbol) plus a spurious fourth
// candidate with a wildly different module size, which moduleSizesAgree
// should exclude even though it forms a closer-to-equilateral triangle.
func TestSelectBestPatternsPicksIsoscelesRightTriple(t *testing.T) {
	tl := pattern(0, 0, 4)
	tr := pattern(40, 0, 4)
	bl := pattern(0, 40, 4)
	spurious := pattern(20, 60, 40) // module size far outside the 1.4x ratio

	out := selectBestPatterns([]*FinderPattern{tl, tr, bl, spurious})
	if len(out) != 3 {
		t.Fatalf("got %d patterns, want 3", len(out))
	}
	for _, p := range out {
		if p == spurious {
			t.Fatalf("spurious candidate with disagreeing module size was selected")
		}
	}
}

func TestModuleSizesAgree(t *testing.T) {
	a := pattern(0, 0, 4)
	b := pattern(0, 0, 5)
	if !moduleSizesAgree(a, b) {
		t.Error("5/4 = 1.25 should be within the 1.4x ratio")
	}
	c := pattern(0, 0, 10)
	if moduleSizesAgree(a, c) {
		t.Error("10/4 = 2.5 should exceed the 1.4x ratio")
	}
}
