package irc

import (
	"math"
	"testing"
)

func TestWilsonBondRowMatchesFiniteDifference(t *testing.T) {
	mol := mustMol(t, []string{"H", "H"}, []float64{
		0, 0, 0,
		0.3, 0, 0.74,
	})
	coords := []Coordinate{{Kind: BondCoord, Atoms: []int{0, 1}}}
	B := WilsonBMatrix(coords, mol.Geom)

	for atom := 0; atom < 2; atom++ {
		for d := 0; d < 3; d++ {
			orig := mol.Geom.At(atom, d)
			mol.Geom.Set(atom, d, orig+fdStep)
			qp := coords[0].Value(mol.Geom)
			mol.Geom.Set(atom, d, orig-fdStep)
			qm := coords[0].Value(mol.Geom)
			mol.Geom.Set(atom, d, orig)

			want := (qp - qm) / (2 * fdStep)
			got := B.At(0, 3*atom+d)
			if math.Abs(got-want) > 1e-5 {
				t.Errorf("B[0][%d,%d] = %v, want %v (finite difference)", atom, d, got, want)
			}
		}
	}
}

func TestWilsonAngleRowMatchesFiniteDifference(t *testing.T) {
	mol := mustMol(t, []string{"O", "H", "H"}, []float64{
		0, 0, 0.119,
		0, 0.763, -0.477,
		0, -0.763, -0.477,
	})
	coords := []Coordinate{{Kind: AngleCoord, Atoms: []int{1, 0, 2}}}
	B := WilsonBMatrix(coords, mol.Geom)

	for atom := 0; atom < 3; atom++ {
		for d := 0; d < 3; d++ {
			orig := mol.Geom.At(atom, d)
			mol.Geom.Set(atom, d, orig+fdStep)
			qp := coords[0].Value(mol.Geom)
			mol.Geom.Set(atom, d, orig-fdStep)
			qm := coords[0].Value(mol.Geom)
			mol.Geom.Set(atom, d, orig)

			want := (qp - qm) / (2 * fdStep)
			got := B.At(0, 3*atom+d)
			if math.Abs(got-want) > 1e-4 {
				t.Errorf("B[0][%d,%d] = %v, want %v (finite difference)", atom, d, got, want)
			}
		}
	}
}

func TestWilsonBMatrixShape(t *testing.T) {
	mol := mustMol(t, []string{"O", "H", "H"}, []float64{
		0, 0, 0.119,
		0, 0.763, -0.477,
		0, -0.763, -0.477,
	})
	g, err := InferConnectivity(mol)
	if err != nil {
		t.Fatalf("InferConnectivity: %v", err)
	}
	coords := EnumerateCoordinates(g, mol.Geom)
	B := WilsonBMatrix(coords, mol.Geom)
	r, c := B.Dims()
	if r != len(coords) || c != 3*mol.Len() {
		t.Errorf("B has shape %dx%d, want %dx%d", r, c, len(coords), 3*mol.Len())
	}
}
