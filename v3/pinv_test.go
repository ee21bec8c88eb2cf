package v3

import (
	"math"
	"testing"
)

func TestPinvIdentity(t *testing.T) {
	I, _ := NewMatrix([]float64{1, 0, 0, 1}, 2, 2)
	p, err := Pinv(I, DefaultSVDCutoff)
	if err != nil {
		t.Fatalf("Pinv failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(p.At(i, j)-want) > 1e-9 {
				t.Errorf("pinv(I)[%d][%d] = %v, want %v", i, j, p.At(i, j), want)
			}
		}
	}
}

func TestPinvRectangular(t *testing.T) {
	// A is 2x3, full row rank: A * pinv(A) should be the 2x2 identity.
	A, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0}, 2, 3)
	p, err := Pinv(A, DefaultSVDCutoff)
	if err != nil {
		t.Fatalf("Pinv failed: %v", err)
	}
	prod := Zeros(2, 2)
	prod.Mul(A, p)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod.At(i, j)-want) > 1e-9 {
				t.Errorf("A*pinv(A)[%d][%d] = %v, want %v", i, j, prod.At(i, j), want)
			}
		}
	}
}

func TestPinvSingularDropsSmallValues(t *testing.T) {
	// A rank-deficient matrix: second row is a multiple of the first.
	A, _ := NewMatrix([]float64{1, 2, 2, 4}, 2, 2)
	p, err := Pinv(A, DefaultSVDCutoff)
	if err != nil {
		t.Fatalf("Pinv failed: %v", err)
	}
	// Sanity check: pinv should not blow up into huge/NaN values.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := p.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("pinv produced non-finite value at (%d,%d): %v", i, j, v)
			}
		}
	}
}
