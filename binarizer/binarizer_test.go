package binarizer

import "testing"

// splitLuminanceSource is a synthetic raster whose left half is dark and
// right half is light, used to exercise both binarizers without needing an
// image fixture.
type splitLuminanceSource struct {
	width, height int
}

func (s *splitLuminanceSource) Row(y int, row []byte) []byte {
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	for x := 0; x < s.width; x++ {
		row[x] = s.pixel(x)
	}
	return row
}

func (s *splitLuminanceSource) Matrix() []byte {
	out := make([]byte, s.width*s.height)
	for y := 0; y < s.height; y++ {
		copy(out[y*s.width:(y+1)*s.width], s.Row(y, nil))
	}
	return out
}

func (s *splitLuminanceSource) Width() int  { return s.width }
func (s *splitLuminanceSource) Height() int { return s.height }

func (s *splitLuminanceSource) pixel(x int) byte {
	if x < s.width/2 {
		return 20
	}
	return 235
}

func TestGlobalHistogramRowMatchesMatrix(t *testing.T) {
	source := &splitLuminanceSource{width: 64, height: 64}
	g := NewGlobalHistogram(source)

	matrix, err := g.BlackMatrix()
	if err != nil {
		t.Fatalf("BlackMatrix failed: %v", err)
	}

	g2 := NewGlobalHistogram(source)
	for y := 0; y < source.height; y++ {
		row, err := g2.BlackRow(y, nil)
		if err != nil {
			t.Fatalf("BlackRow(%d) failed: %v", y, err)
		}
		for x := 1; x < source.width-1; x++ {
			if row.Get(x) != matrix.Get(x, y) {
				t.Errorf("(%d,%d): row says %v, matrix says %v", x, y, row.Get(x), matrix.Get(x, y))
			}
		}
	}
}

func TestGlobalHistogramSeparatesHalves(t *testing.T) {
	source := &splitLuminanceSource{width: 64, height: 64}
	g := NewGlobalHistogram(source)
	matrix, err := g.BlackMatrix()
	if err != nil {
		t.Fatalf("BlackMatrix failed: %v", err)
	}
	if !matrix.Get(5, 5) {
		t.Error("dark half should be set")
	}
	if matrix.Get(60, 5) {
		t.Error("light half should be unset")
	}
}

func TestGlobalHistogramFailsOnUniformImage(t *testing.T) {
	source := &splitLuminanceSource{width: 64, height: 64}
	// Flatten the pixel function via a wrapper source that always returns mid-grey.
	uniform := &uniformLuminanceSource{width: source.width, height: source.height, value: 128}
	g := NewGlobalHistogram(uniform)
	if _, err := g.BlackMatrix(); err == nil {
		t.Error("expected not-found error for a uniform, low-contrast image")
	}
}

type uniformLuminanceSource struct {
	width, height int
	value         byte
}

func (s *uniformLuminanceSource) Row(y int, row []byte) []byte {
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	for x := range row[:s.width] {
		row[x] = s.value
	}
	return row
}

func (s *uniformLuminanceSource) Matrix() []byte {
	out := make([]byte, s.width*s.height)
	for i := range out {
		out[i] = s.value
	}
	return out
}

func (s *uniformLuminanceSource) Width() int  { return s.width }
func (s *uniformLuminanceSource) Height() int { return s.height }

func TestBlockLocalSeparatesHalves(t *testing.T) {
	source := &splitLuminanceSource{width: 128, height: 128}
	b := NewBlockLocal(source)
	matrix, err := b.BlackMatrix()
	if err != nil {
		t.Fatalf("BlackMatrix failed: %v", err)
	}
	// Uniform blocks are low-contrast and threshold at min/2 (10 for the dark
	// half), so a dark pixel is set only where the 5x5 block average reaches
	// into the light half: column 60 lies in block 7, next to block 8.
	if !matrix.Get(60, 5) {
		t.Error("dark half should be set")
	}
	if matrix.Get(120, 5) {
		t.Error("light half should be unset")
	}
}

func TestBlockLocalFallsBackToGlobalHistogramBelowMinimumDimension(t *testing.T) {
	source := &splitLuminanceSource{width: 20, height: 20}
	b := NewBlockLocal(source)
	if _, err := b.BlackMatrix(); err != nil {
		t.Fatalf("BlackMatrix failed: %v", err)
	}
}
