package transform

import "testing"

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

func TestQuadrilateralToQuadrilateralIdentity(t *testing.T) {
	// Mapping a square onto itself should be the identity transform.
	pt := QuadrilateralToQuadrilateral(
		0, 0, 1, 0, 1, 1, 0, 1,
		0, 0, 1, 0, 1, 1, 0, 1,
	)
	points := []float64{0.25, 0.75, 0.9, 0.1}
	want := append([]float64{}, points...)
	pt.TransformPoints(points)
	for i := range points {
		if !approxEqual(points[i], want[i]) {
			t.Errorf("point[%d] = %v, want %v", i, points[i], want[i])
		}
	}
}

func TestSquareToQuadrilateralMapsCorners(t *testing.T) {
	// A non-trivial destination quad: corners of a QR-like skewed symbol.
	pt := SquareToQuadrilateral(10, 20, 110, 15, 105, 120, 5, 115)
	corners := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	pt.TransformPoints(corners)
	want := []float64{10, 20, 110, 15, 105, 120, 5, 115}
	for i := range corners {
		if !approxEqual(corners[i], want[i]) {
			t.Errorf("corner[%d] = %v, want %v", i, corners[i], want[i])
		}
	}
}

func TestQuadrilateralToSquareInvertsSquareToQuadrilateral(t *testing.T) {
	fwd := SquareToQuadrilateral(10, 20, 110, 15, 105, 120, 5, 115)
	inv := QuadrilateralToSquare(10, 20, 110, 15, 105, 120, 5, 115)

	points := []float64{0.3, 0.4, 0.6, 0.9}
	original := append([]float64{}, points...)

	fwd.TransformPoints(points)
	inv.TransformPoints(points)

	for i := range points {
		if !approxEqual(points[i], original[i]) {
			t.Errorf("round trip point[%d] = %v, want %v", i, points[i], original[i])
		}
	}
}
