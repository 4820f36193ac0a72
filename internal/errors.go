package internal

import "errors"

// Shared sentinel errors. The root, binarizer and qrcode packages return
// these; the leaf packages reedsolomon, transform and charset have their own
// sentinels, which qrcode/decoder and qrcode/detector translate into these.
// The root package re-exports them under its own names for callers who don't
// want to import this internal package.
var (
	ErrNotFound        = errors.New("qrdecode: symbol not found")
	ErrFormat          = errors.New("qrdecode: format error")
	ErrReedSolomon     = errors.New("qrdecode: reed-solomon decoding failed")
	ErrInvalidArgument = errors.New("qrdecode: invalid argument")
)
