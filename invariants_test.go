package irc

import (
	"math"
	"testing"

	v3 "github.com/rmera/goirc/v3"
)

func waterGeom(t *testing.T) (*Molecule, *Graph, []Coordinate) {
	mol := mustMol(t, []string{"O", "H", "H"}, []float64{
		0, 0, 0.119,
		0, 0.763, -0.477,
		0, -0.763, -0.477,
	})
	g, err := InferConnectivity(mol)
	if err != nil {
		t.Fatalf("InferConnectivity: %v", err)
	}
	return mol, g, EnumerateCoordinates(g, mol.Geom)
}

func TestAngleDomainInvariant(t *testing.T) {
	mol, g, _ := waterGeom(t)
	coords := EnumerateCoordinates(g, mol.Geom)
	for _, c := range coords {
		v := c.Value(mol.Geom)
		switch c.Kind {
		case AngleCoord:
			if v < 0 || v > math.Pi {
				t.Errorf("angle %v out of [0,pi]", v)
			}
		case DihedralCoord:
			if v <= -math.Pi || v > math.Pi {
				t.Errorf("dihedral %v out of (-pi,pi]", v)
			}
		}
	}
}

func TestRigidMotionInvariance(t *testing.T) {
	mol, g, coords := waterGeom(t)
	before := CartesianToInternal(coords, mol.Geom)

	// Translate every atom by a fixed vector, then apply a rotation
	// about the z axis.
	n := mol.Geom.NVecs()
	translated := v3.ZeroVecs(n)
	for i := 0; i < n; i++ {
		translated.Set(i, 0, mol.Geom.At(i, 0)+1.5)
		translated.Set(i, 1, mol.Geom.At(i, 1)-0.7)
		translated.Set(i, 2, mol.Geom.At(i, 2)+3.2)
	}

	theta := 0.4
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	rotated := v3.ZeroVecs(n)
	for i := 0; i < n; i++ {
		x, y, z := translated.At(i, 0), translated.At(i, 1), translated.At(i, 2)
		rotated.Set(i, 0, cosT*x-sinT*y)
		rotated.Set(i, 1, sinT*x+cosT*y)
		rotated.Set(i, 2, z)
	}

	after := CartesianToInternal(coords, rotated)
	for i, c := range coords {
		tol := 1e-9
		delta := WrapDelta(c.Kind, after[i]-before[i])
		if math.Abs(delta) > tol {
			t.Errorf("coordinate %d (%v) changed under rigid motion: before=%v after=%v", i, c.Kind, before[i], after[i])
		}
	}

	_ = g
}

func TestRoundTripSmallRandomStep(t *testing.T) {
	mol, _, coords := waterGeom(t)
	q0 := CartesianToInternal(coords, mol.Geom)

	// A fixed, deliberately non-zero displacement small enough that a
	// single Newton pass should converge without step-halving. ~0.027 au
	// total norm for water's three coordinates, spread unevenly across
	// them.
	dq := v3.ZeroVector(len(coords))
	weights := []float64{0.02, -0.015, 0.01}
	for i := range coords {
		dq[i] = weights[i%len(weights)]
	}

	res, err := InternalToCartesian(coords, q0, dq, mol.Geom)
	if err != nil {
		t.Fatalf("InternalToCartesian: %v", err)
	}
	if !res.Converged {
		t.Fatalf("small step should converge, got %d iterations", res.NIterations)
	}

	q1 := CartesianToInternal(coords, res.XC)
	target := q0.Add(dq)
	diff := v3.ZeroVector(len(coords))
	for i := range coords {
		diff[i] = WrapDelta(coords[i].Kind, q1[i]-target[i])
	}
	if rms := diff.RMS(); rms > 1e-4 {
		t.Errorf("round-trip rms error %v exceeds tolerance", rms)
	}
}

func TestWilsonConsistencyFirstOrder(t *testing.T) {
	mol, _, coords := waterGeom(t)
	q0 := CartesianToInternal(coords, mol.Geom)
	B := WilsonBMatrix(coords, mol.Geom)

	n := mol.Geom.NVecs()
	dx := v3.ZeroVector(3 * n)
	step := 1e-4
	// A small, arbitrary displacement that moves the atoms relative to
	// each other (not a rigid translation, which both sides map to zero).
	for i := 0; i < 3*n; i++ {
		dx[i] = step * float64((i%4)-1)
	}

	dxCol := dx.AsColMatrix()
	predCol := v3.Zeros(len(coords), 1)
	predCol.Mul(B, dxCol)
	predicted := v3.VectorFromCol(predCol, 0)

	moved := v3.ZeroVecs(n)
	moved.Copy(mol.Geom)
	for i := 0; i < n; i++ {
		for d := 0; d < 3; d++ {
			moved.Set(i, d, moved.At(i, d)+dx[3*i+d])
		}
	}
	q1 := CartesianToInternal(coords, moved)

	for i := range coords {
		actualDelta := WrapDelta(coords[i].Kind, q1[i]-q0[i])
		residual := math.Abs(actualDelta - predicted[i])
		// first-order residual should scale with step^2
		if residual > 10*step*step {
			t.Errorf("coordinate %d: Wilson-predicted delta %v, actual %v, residual %v exceeds O(step^2)",
				i, predicted[i], actualDelta, residual)
		}
	}
}
