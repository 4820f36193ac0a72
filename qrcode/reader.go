// Package qrcode assembles the bit-matrix parser, detector, and decoder into
// the Reader the root package dispatches to.
package qrcode

import (
	"math"

	qrdecode "github.com/codemasher/go-qrdecode"
	"github.com/codemasher/go-qrdecode/bitutil"
	"github.com/codemasher/go-qrdecode/internal"
	"github.com/codemasher/go-qrdecode/qrcode/decoder"
	"github.com/codemasher/go-qrdecode/qrcode/detector"
)

// Reader decodes QR codes from binary images.
type Reader struct {
	dec *decoder.Decoder
}

// NewReader creates a new QR code Reader.
func NewReader() *Reader {
	return &Reader{
		dec: decoder.NewDecoder(),
	}
}

// Decode locates and decodes a QR code in the given image.
func (r *Reader) Decode(image *qrdecode.BinaryBitmap, opts *qrdecode.Options) (*qrdecode.Result, error) {
	if opts == nil {
		opts = &qrdecode.Options{}
	}

	matrix, err := image.BlackMatrix()
	if err != nil {
		return nil, err
	}

	if opts.PureBarcode {
		bits, err := extractPureBits(matrix)
		if err != nil {
			return nil, err
		}
		dr, err := r.dec.Decode(bits, opts.CharacterSet)
		if err != nil {
			return nil, err
		}
		return toResult(dr, nil), nil
	}

	det := detector.NewDetector(matrix)
	detectorResult, err := det.Detect(false)
	if err != nil {
		return nil, err
	}
	dr, err := r.dec.Decode(detectorResult.Bits, opts.CharacterSet)
	if err != nil {
		return nil, err
	}

	points := make([]qrdecode.ResultPoint, len(detectorResult.Points))
	for i, p := range detectorResult.Points {
		points[i] = qrdecode.ResultPoint{X: p.X, Y: p.Y}
	}
	return toResult(dr, points), nil
}

func toResult(dr *internal.DecoderResult, points []qrdecode.ResultPoint) *qrdecode.Result {
	result := qrdecode.NewResult(dr.Text, dr.RawBytes, points)
	result.Version = dr.Version
	result.ECCLevel = dr.ECLevel
	result.ByteSegments = dr.ByteSegments
	if dr.HasStructuredAppend() {
		result.Structured = &qrdecode.StructuredAppend{
			Sequence: dr.StructuredAppendSequenceNumber,
			Parity:   dr.StructuredAppendParity,
		}
		result.PutMetadata(qrdecode.MetadataStructuredAppendSequence, dr.StructuredAppendSequenceNumber)
		result.PutMetadata(qrdecode.MetadataStructuredAppendParity, dr.StructuredAppendParity)
	}
	if dr.ByteSegments != nil {
		result.PutMetadata(qrdecode.MetadataByteSegments, dr.ByteSegments)
	}
	if dr.ECLevel != "" {
		result.PutMetadata(qrdecode.MetadataErrorCorrectionLevel, dr.ECLevel)
	}
	result.PutMetadata(qrdecode.MetadataErrorsCorrected, dr.ErrorsCorrected)
	return result
}

// Reset discards any per-instance caches so the Reader can be reused.
func (r *Reader) Reset() {}

// extractPureBits extracts a QR code from a "pure" image — one that contains
// only the unrotated, unskewed barcode with some white border.
func extractPureBits(image *bitutil.BitMatrix) (*bitutil.BitMatrix, error) {
	leftTopBlack := image.TopLeftOnBit()
	rightBottomBlack := image.BottomRightOnBit()
	if leftTopBlack == nil || rightBottomBlack == nil {
		return nil, qrdecode.ErrNotFound
	}

	moduleSize, err := moduleSizePure(leftTopBlack, image)
	if err != nil {
		return nil, err
	}

	top := leftTopBlack[1]
	bottom := rightBottomBlack[1]
	left := leftTopBlack[0]
	right := rightBottomBlack[0]

	if left >= right || top >= bottom {
		return nil, qrdecode.ErrNotFound
	}

	if bottom-top != right-left {
		right = left + (bottom - top)
		if right >= image.Width() {
			return nil, qrdecode.ErrNotFound
		}
	}

	matrixWidth := int(math.Round(float64(right-left+1) / moduleSize))
	matrixHeight := int(math.Round(float64(bottom-top+1) / moduleSize))
	if matrixWidth <= 0 || matrixHeight <= 0 {
		return nil, qrdecode.ErrNotFound
	}
	if matrixHeight != matrixWidth {
		return nil, qrdecode.ErrNotFound
	}

	nudge := int(moduleSize / 2.0)
	top += nudge
	left += nudge

	nudgedTooFarRight := left + int(float64(matrixWidth-1)*moduleSize) - right
	if nudgedTooFarRight > 0 {
		if nudgedTooFarRight > nudge {
			return nil, qrdecode.ErrNotFound
		}
		left -= nudgedTooFarRight
	}
	nudgedTooFarDown := top + int(float64(matrixHeight-1)*moduleSize) - bottom
	if nudgedTooFarDown > 0 {
		if nudgedTooFarDown > nudge {
			return nil, qrdecode.ErrNotFound
		}
		top -= nudgedTooFarDown
	}

	bits := bitutil.NewBitMatrix(matrixWidth)
	for y := 0; y < matrixHeight; y++ {
		iOffset := top + int(float64(y)*moduleSize)
		for x := 0; x < matrixWidth; x++ {
			if image.Get(left+int(float64(x)*moduleSize), iOffset) {
				bits.Set(x, y)
			}
		}
	}
	return bits, nil
}

func moduleSizePure(leftTopBlack []int, image *bitutil.BitMatrix) (float64, error) {
	height := image.Height()
	width := image.Width()
	x := leftTopBlack[0]
	y := leftTopBlack[1]
	inBlack := true
	transitions := 0
	for x < width && y < height {
		if inBlack != image.Get(x, y) {
			transitions++
			if transitions == 5 {
				break
			}
			inBlack = !inBlack
		}
		x++
		y++
	}
	if x == width || y == height {
		return 0, qrdecode.ErrNotFound
	}
	return float64(x-leftTopBlack[0]) / 7.0, nil
}
