package v3

import (
	"math"
	"testing"
)

func closeF(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMatrixCross(t *testing.T) {
	a, _ := NewMatrix([]float64{1, 0, 0}, 1, 3)
	b, _ := NewMatrix([]float64{0, 1, 0}, 1, 3)
	c := ZeroVecs(1)
	c.Cross(a, b)
	if !closeF(c.At(0, 0), 0, 1e-12) || !closeF(c.At(0, 1), 0, 1e-12) || !closeF(c.At(0, 2), 1, 1e-12) {
		t.Errorf("expected (0,0,1), got (%v,%v,%v)", c.At(0, 0), c.At(0, 1), c.At(0, 2))
	}
}

func TestMatrixNormUnit(t *testing.T) {
	a, _ := NewMatrix([]float64{3, 4, 0}, 1, 3)
	if !closeF(a.Norm(), 5, 1e-12) {
		t.Errorf("expected norm 5, got %v", a.Norm())
	}
	u := ZeroVecs(1)
	u.Unit(a)
	if !closeF(u.Norm(), 1, 1e-9) {
		t.Errorf("expected unit norm 1, got %v", u.Norm())
	}
}

func TestMatrixTranspose(t *testing.T) {
	m, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	tr := m.T()
	rr, rc := tr.Dims()
	if rr != 3 || rc != 2 {
		t.Fatalf("expected 3x2, got %dx%d", rr, rc)
	}
	if tr.At(2, 1) != m.At(1, 2) {
		t.Errorf("transpose mismatch: tr(2,1)=%v m(1,2)=%v", tr.At(2, 1), m.At(1, 2))
	}
}

func TestMatrixAddVec(t *testing.T) {
	m := ZeroVecs(2)
	v, _ := NewMatrix([]float64{1, 1, 1}, 1, 3)
	m.AddVec(m, v)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != 1 {
				t.Errorf("AddVec: expected 1 at (%d,%d), got %v", i, j, m.At(i, j))
			}
		}
	}
}

func TestNewVecsBadLength(t *testing.T) {
	if _, err := NewVecs([]float64{1, 2}); err == nil {
		t.Error("expected error for non-multiple-of-3 length")
	}
}
