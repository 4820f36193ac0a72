package decoder

import (
	"testing"

	"github.com/codemasher/go-qrdecode/bitutil"
)

func TestBitMatrixParserMirrorIsAnInvolution(t *testing.T) {
	dimension := 21
	bm := bitutil.NewBitMatrix(dimension)
	bm.Set(0, 5)
	bm.Set(5, 0)
	bm.Set(3, 3)
	bm.Set(10, 2)

	parser, err := NewBitMatrixParser(bm)
	if err != nil {
		t.Fatalf("NewBitMatrixParser failed: %v", err)
	}

	before := bm.Clone()
	parser.Mirror()
	parser.Mirror()

	if !bm.Equals(before) {
		t.Error("mirroring twice should restore the original matrix")
	}
}

func TestNewBitMatrixParserRejectsBadDimension(t *testing.T) {
	bm := bitutil.NewBitMatrix(20) // not dimension mod 4 == 1
	if _, err := NewBitMatrixParser(bm); err == nil {
		t.Error("expected error for invalid dimension")
	}
}
