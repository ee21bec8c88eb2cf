/*
 * evaluate.go, part of goirc.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package irc

import (
	"math"

	v3 "github.com/rmera/goirc/v3"
)

// EnumerateCoordinates builds the redundant set of internal coordinates
// for a molecule with connectivity g and geometry geom: one entry per
// bond, then per angle, then per dihedral, then the two components of
// each linear angle, then one per out-of-plane bend.
func EnumerateCoordinates(g *Graph, geom *v3.Matrix) []Coordinate {
	n := len(g.Adj)
	dist := g.GraphDistances()

	var coords, linear []Coordinate

	for _, e := range g.Edges {
		coords = append(coords, Coordinate{Kind: BondCoord, Atoms: []int{e.I, e.J}})
	}

	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			if dist[i][j] > 2 {
				continue
			}
			for k := 0; k < n; k++ {
				if dist[k][i] == 1 && dist[k][j] == 1 {
					for _, a := range makeAngle(i, k, j, geom) {
						if a.Kind == LinearAngleCoord {
							linear = append(linear, a)
						} else {
							coords = append(coords, a)
						}
					}
				}
			}
		}
	}

	seen := map[[4]int]bool{}
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			if dist[i][j] > 3 {
				continue
			}
			for k := 0; k < n; k++ {
				if dist[k][i] != 1 || dist[k][j] != 2 {
					continue
				}
				for l := 0; l < n; l++ {
					if dist[l][i] != 2 || dist[l][j] != 1 || dist[l][k] != 1 {
						continue
					}
					key := [4]int{i, k, l, j}
					rev := [4]int{j, l, k, i}
					if seen[key] || seen[rev] {
						continue // same physical dihedral reached via another ring path
					}
					if dihedralDegenerate(i, k, l, geom) || dihedralDegenerate(k, l, j, geom) {
						continue // torsion undefined: a sub-angle is within epsilon of a straight line
					}
					seen[key] = true
					coords = append(coords, Coordinate{Kind: DihedralCoord, Atoms: []int{i, k, l, j}})
				}
			}
		}
	}

	coords = append(coords, linear...)

	for c := 0; c < n; c++ {
		nbrs := g.Adj[c]
		if len(nbrs) < 3 {
			continue
		}
		for a := 0; a < len(nbrs); a++ {
			for b := a + 1; b < len(nbrs); b++ {
				for d := b + 1; d < len(nbrs); d++ {
					// atom order is (center, plane1, plane2, measured): nbrs[a]
					// is the atom whose deviation from the nbrs[b]-nbrs[d]
					// plane is measured.
					coords = append(coords, Coordinate{Kind: OutOfPlaneBendCoord, Atoms: []int{c, nbrs[b], nbrs[d], nbrs[a]}})
				}
			}
		}
	}

	return coords
}

func angleIsLinear(i, k, j int, geom *v3.Matrix) bool {
	return angleValue(i, k, j, geom) > LinearAngleThreshold
}

// dihedralDegenerateEpsilon is how close a sub-angle must be to pi before
// the torsion built on top of it is considered undefined, per the
// literal per-pair formula (not the wider quasi-linear promotion
// threshold used by angleIsLinear/LinearAngleThreshold).
const dihedralDegenerateEpsilon = 1e-6

func dihedralDegenerate(i, k, j int, geom *v3.Matrix) bool {
	return math.Abs(angleValue(i, k, j, geom)-math.Pi) < dihedralDegenerateEpsilon
}

// makeAngle returns a single AngleCoord, or, if the angle is quasi-linear,
// the two orthogonal LinearAngleCoord components (Tag 0 and Tag 1) that
// replace it: a linear bend has no well-defined single bending plane, so
// one scalar angle can't describe it.
func makeAngle(i, k, j int, geom *v3.Matrix) []Coordinate {
	if angleIsLinear(i, k, j, geom) {
		return []Coordinate{
			{Kind: LinearAngleCoord, Atoms: []int{i, k, j}, Tag: 0},
			{Kind: LinearAngleCoord, Atoms: []int{i, k, j}, Tag: 1},
		}
	}
	return []Coordinate{{Kind: AngleCoord, Atoms: []int{i, k, j}}}
}

func vec(geom *v3.Matrix, i int) *v3.Matrix {
	return geom.VecView(i)
}

func sub(a, b *v3.Matrix) *v3.Matrix {
	out := v3.ZeroVecs(1)
	out.Sub(a, b)
	return out
}

func unit(a *v3.Matrix) *v3.Matrix {
	out := v3.ZeroVecs(1)
	out.Unit(a)
	return out
}

func angleValue(i, k, j int, geom *v3.Matrix) float64 {
	vi, vk, vj := vec(geom, i), vec(geom, k), vec(geom, j)
	e1 := sub(vi, vk)
	e2 := sub(vj, vk)
	arg := e1.Dot(e2) / (e1.Norm() * e2.Norm())
	if arg > 1 {
		arg = 1
	}
	if arg < -1 {
		arg = -1
	}
	return math.Acos(arg)
}

func dihedralValue(i, k, l, j int, geom *v3.Matrix) float64 {
	vi, vk, vl, vj := vec(geom, i), vec(geom, k), vec(geom, l), vec(geom, j)
	b1 := sub(vk, vi)
	b2 := sub(vl, vk)
	b3 := sub(vj, vl)

	n1 := v3.ZeroVecs(1)
	n1.Cross(b1, b2)
	n2 := v3.ZeroVecs(1)
	n2.Cross(b2, b3)

	m := v3.ZeroVecs(1)
	m.Cross(n1, unit(b2))

	y := m.Dot(n2)
	x := n1.Dot(n2)
	return math.Atan2(y, x)
}

// oopbValue measures how far the bond center-apex deviates from the
// plane defined by center, p1 and p2: zero when the four atoms are
// coplanar, the Wilson out-of-plane bending angle otherwise.
func oopbValue(center, p1, p2, apex int, geom *v3.Matrix) float64 {
	vc, v1, v2, va := vec(geom, center), vec(geom, p1), vec(geom, p2), vec(geom, apex)
	e1 := unit(sub(v1, vc))
	e2 := unit(sub(v2, vc))
	ea := unit(sub(va, vc))

	normal := v3.ZeroVecs(1)
	normal.Cross(e1, e2)
	sinphi12 := normal.Norm()
	if sinphi12 < appzeroIRC {
		return 0
	}
	normal.Unit(normal)

	arg := normal.Dot(ea)
	if arg > 1 {
		arg = 1
	}
	if arg < -1 {
		arg = -1
	}
	return math.Asin(arg)
}

const appzeroIRC = 1e-10

// Value returns the current numerical value of c in geom: a length in
// Bohr for a bond, radians for every angular coordinate.
func (c Coordinate) Value(geom *v3.Matrix) float64 {
	a := c.Atoms
	switch c.Kind {
	case BondCoord:
		return sub(vec(geom, a[0]), vec(geom, a[1])).Norm()
	case AngleCoord:
		return angleValue(a[0], a[1], a[2], geom)
	case DihedralCoord:
		return dihedralValue(a[0], a[1], a[2], a[3], geom)
	case LinearAngleCoord:
		return linearAngleComponent(a[0], a[1], a[2], c.Tag, geom)
	case OutOfPlaneBendCoord:
		return oopbValue(a[0], a[1], a[2], a[3], geom)
	default:
		panic("goirc: unknown coordinate kind")
	}
}

// linearAngleComponent evaluates the bending of a near-linear (i,k,j)
// angle along one of two mutually orthogonal reference axes, both
// perpendicular to the i-k bond. Both are built from the world axis with
// the smallest i-k projection (the most numerically stable choice): tag 0
// uses the normalized cross product of the bond with that world axis, tag
// 1 the axis orthogonal to both the tag-0 axis and the bond.
func linearAngleComponent(i, k, j, tag int, geom *v3.Matrix) float64 {
	vi, vk, vj := vec(geom, i), vec(geom, k), vec(geom, j)
	eik := unit(sub(vi, vk))
	ref := referenceAxis(eik)
	axis1 := v3.ZeroVecs(1)
	axis1.Cross(eik, ref)
	axis1.Unit(axis1)
	axis2 := v3.ZeroVecs(1)
	axis2.Cross(eik, axis1)
	axis2.Unit(axis2)

	ekj := sub(vj, vk)
	rkj := ekj.Norm()

	var axis *v3.Matrix
	if tag == 0 {
		axis = axis1
	} else {
		axis = axis2
	}
	return ekj.Dot(axis) / rkj
}

// referenceAxis returns a unit vector not parallel to e, used to seed an
// orthogonal frame around e.
func referenceAxis(e *v3.Matrix) *v3.Matrix {
	x, y, z := math.Abs(e.At(0, 0)), math.Abs(e.At(0, 1)), math.Abs(e.At(0, 2))
	candidate := []float64{1, 0, 0}
	if x <= y && x <= z {
		candidate = []float64{1, 0, 0}
	} else if y <= x && y <= z {
		candidate = []float64{0, 1, 0}
	} else {
		candidate = []float64{0, 0, 1}
	}
	M, _ := v3.NewMatrix(candidate, 1, 3)
	return M
}

// CartesianToInternal evaluates every coordinate in coords at the
// geometry geom, returning them as a flat Vector in the same order.
func CartesianToInternal(coords []Coordinate, geom *v3.Matrix) v3.Vector {
	q := v3.ZeroVector(len(coords))
	for idx, c := range coords {
		q[idx] = c.Value(geom)
	}
	return q
}

// WrapDelta wraps the difference (new - old) for angular coordinates
// into (-pi, pi], the convention spec'd for dihedrals and the
// linear-angle tag components; bond lengths and ordinary angles are left
// untouched since they never need to wrap.
func WrapDelta(kind CoordKind, delta float64) float64 {
	if kind != DihedralCoord && kind != LinearAngleCoord {
		return delta
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
