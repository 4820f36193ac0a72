package qrdecode

import "github.com/codemasher/go-qrdecode/binarizer"

// Options configures a single decode attempt.
type Options struct {
	// PureBarcode hints that the image contains only the unrotated,
	// unskewed symbol with a small quiet-zone border, enabling a faster
	// direct-extraction path that skips finder-pattern search.
	PureBarcode bool

	// CharacterSet overrides charset auto-detection for byte-mode segments
	// that carry no ECI designator. The name is passed on to
	// charset.DecodeBytes, e.g. "UTF-8", "ISO-8859-1", "Shift_JIS".
	CharacterSet string
}

// Reader decodes a QR symbol out of a BinaryBitmap. The qrcode package
// registers its implementation from an init() function so that this leaf
// package never has to import it directly.
type Reader interface {
	Decode(image *BinaryBitmap, opts *Options) (*Result, error)
}

var newReader func() Reader

// RegisterReader installs the QR reader factory. Called once, from the
// qrcode package's init().
func RegisterReader(factory func() Reader) {
	newReader = factory
}

// Decode locates and decodes the single QR symbol present in src.
//
// Decode first tries the fast global-histogram binarizer; if no symbol is
// found it retries with the slower, more tolerant block-local binarizer.
// This mirrors the two-pass strategy real-world readers use to balance
// speed against robustness to uneven lighting.
func Decode(src LuminanceSource, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if newReader == nil {
		panic("qrdecode: no reader registered; import github.com/codemasher/go-qrdecode/qrcode")
	}
	reader := newReader()

	attempts := []Binarizer{
		binarizer.NewGlobalHistogram(src),
		binarizer.NewBlockLocal(src),
	}

	var firstErr error
	for i, bin := range attempts {
		bitmap := NewBinaryBitmap(bin)
		result, err := reader.Decode(bitmap, opts)
		if err == nil {
			return result, nil
		}
		if i == 0 {
			firstErr = err
		}
	}
	return nil, firstErr
}
