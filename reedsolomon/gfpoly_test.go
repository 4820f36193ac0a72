package reedsolomon

import "testing"

func TestGenericGFPolyDivideSatisfiesEuclideanInvariant(t *testing.T) {
	field := QRCodeField256
	a := newGenericGFPoly(field, []int{1, 2, 3, 4, 5})
	b := newGenericGFPoly(field, []int{1, 0, 1})

	qr := a.Divide(b)
	q, r := qr[0], qr[1]

	if r.Degree() >= b.Degree() {
		t.Fatalf("remainder degree %d should be less than divisor degree %d", r.Degree(), b.Degree())
	}

	reconstructed := q.MultiplyPoly(b).AddOrSubtractPoly(r)
	if reconstructed.Degree() != a.Degree() {
		t.Fatalf("reconstructed degree %d, want %d", reconstructed.Degree(), a.Degree())
	}
	for d := 0; d <= a.Degree(); d++ {
		if reconstructed.GetCoefficient(d) != a.GetCoefficient(d) {
			t.Errorf("coefficient at degree %d: got %d, want %d", d, reconstructed.GetCoefficient(d), a.GetCoefficient(d))
		}
	}
}

func TestGenericGFPolyDivideByMonomialLeavesZeroRemainder(t *testing.T) {
	field := QRCodeField256
	a := newGenericGFPoly(field, []int{5, 0, 0})
	b := newGenericGFPoly(field, []int{1, 0})

	qr := a.Divide(b)
	if !qr[1].IsZero() {
		t.Errorf("remainder should be zero, got degree %d", qr[1].Degree())
	}
}
