package qrcode

import (
	"testing"

	qrdecode "github.com/codemasher/go-qrdecode"
	"github.com/codemasher/go-qrdecode/binarizer"
	"github.com/codemasher/go-qrdecode/bitutil"
	"github.com/codemasher/go-qrdecode/qrcode/decoder"
	"github.com/codemasher/go-qrdecode/qrcode/encoder"
)

func TestRoundTripNumeric(t *testing.T) {
	testRoundTrip(t, "1234567890", decoder.ECLevelM)
}

func TestRoundTripAlphanumeric(t *testing.T) {
	testRoundTrip(t, "HELLO WORLD", decoder.ECLevelL)
}

func TestRoundTripByte(t *testing.T) {
	testRoundTrip(t, "Hello, World! This is a test.", decoder.ECLevelQ)
}

func TestRoundTripHighEC(t *testing.T) {
	testRoundTrip(t, "TEST123", decoder.ECLevelH)
}

func TestRoundTripAllECLevels(t *testing.T) {
	content := "Testing all EC levels"
	levels := []decoder.ErrorCorrectionLevel{
		decoder.ECLevelL, decoder.ECLevelM, decoder.ECLevelQ, decoder.ECLevelH,
	}
	for _, ecLevel := range levels {
		t.Run(ecLevel.String(), func(t *testing.T) {
			testRoundTrip(t, content, ecLevel)
		})
	}
}

func testRoundTrip(t *testing.T, content string, ecLevel decoder.ErrorCorrectionLevel) {
	t.Helper()

	code, err := encoder.Encode(content, ecLevel, 0, -1)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if code.Matrix == nil {
		t.Fatal("encoded matrix is nil")
	}

	bits := code.ToBitMatrix()

	dec := decoder.NewDecoder()
	result, err := dec.Decode(bits, "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Text != content {
		t.Errorf("round-trip mismatch: got %q, want %q", result.Text, content)
	}
}

// bitMatrixLuminanceSource wraps an encoder-rendered BitMatrix as a
// LuminanceSource, letting end-to-end tests exercise the binarizer and
// detector stages instead of feeding the decoder a pre-sampled matrix.
type bitMatrixLuminanceSource struct {
	matrix *bitutil.BitMatrix
}

func (s *bitMatrixLuminanceSource) Row(y int, row []byte) []byte {
	width := s.matrix.Width()
	if row == nil || len(row) < width {
		row = make([]byte, width)
	}
	for x := 0; x < width; x++ {
		if s.matrix.Get(x, y) {
			row[x] = 0
		} else {
			row[x] = 255
		}
	}
	return row
}

func (s *bitMatrixLuminanceSource) Matrix() []byte {
	width, height := s.matrix.Width(), s.matrix.Height()
	out := make([]byte, width*height)
	for y := 0; y < height; y++ {
		copy(out[y*width:(y+1)*width], s.Row(y, nil))
	}
	return out
}

func (s *bitMatrixLuminanceSource) Width() int  { return s.matrix.Width() }
func (s *bitMatrixLuminanceSource) Height() int { return s.matrix.Height() }

func TestReaderEndToEnd(t *testing.T) {
	code, err := encoder.Encode("https://smiley.codes/qrcode/", decoder.ECLevelM, 0, -1)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	rendered := encoder.RenderResult(code, 256, 256, 4)
	source := &bitMatrixLuminanceSource{matrix: rendered}
	bitmap := qrdecode.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))

	reader := NewReader()
	result, err := reader.Decode(bitmap, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Text != "https://smiley.codes/qrcode/" {
		t.Errorf("got %q, want %q", result.Text, "https://smiley.codes/qrcode/")
	}
	if len(result.Points) != 3 {
		t.Errorf("expected 3 finder points, got %d", len(result.Points))
	}
}
