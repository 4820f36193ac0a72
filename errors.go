package qrdecode

import "github.com/codemasher/go-qrdecode/internal"

// Error kinds surfaced to callers, per the three recoverable failure
// categories of the decoding pipeline plus the fatal programming-error case.
// These are aliases of the sentinels defined in the internal package so that
// every component returns a value comparable with errors.Is against the
// single canonical instance, without every leaf package importing this one.
var (
	// ErrNotFound means no finder triple was located, an alignment pattern
	// search within its region failed where one was required, the binarizer
	// could not establish enough contrast, or a sampled grid point fell
	// outside the source image.
	ErrNotFound = internal.ErrNotFound

	// ErrFormat means a structural property of the decoded data was wrong:
	// bit-matrix dimension, format/version BCH words past Hamming distance 3,
	// a bitstream that ran out of bits, or an invalid mode indicator.
	ErrFormat = internal.ErrFormat

	// ErrReedSolomon means the error-correction stage could not recover a
	// block: the Euclidean algorithm failed to converge, the error locator
	// evaluated to zero at the origin, the Chien search found the wrong
	// number of roots, or a corrected position fell outside the block.
	ErrReedSolomon = internal.ErrReedSolomon

	// ErrInvalidArgument is reserved for programming errors. No function in
	// this module returns it: a negative polynomial degree, an empty
	// coefficient list or a GF(256) inverse or logarithm of zero panics in
	// the reedsolomon package instead.
	ErrInvalidArgument = internal.ErrInvalidArgument
)
