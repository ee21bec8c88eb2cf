/*
 * wilson.go, part of goirc.
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

// fdStep is the Cartesian displacement used by the central-difference
// rows in WilsonBMatrix. Bond and angle rows are filled analytically;
// only dihedral, linear-angle and out-of-plane rows fall back to finite
// differences (see DESIGN.md for why).
const fdStep = 1e-6

// WilsonBMatrix assembles the Wilson B matrix for coords at the geometry
// geom: an m x 3n matrix where row r is d(q_r)/d(x), m = len(coords) and
// n = geom.NVecs().
func WilsonBMatrix(coords []Coordinate, geom *v3.Matrix) *v3.Matrix {
	n := geom.NVecs()
	B := v3.Zeros(len(coords), 3*n)
	runPooled(len(coords), func(r int) {
		c := coords[r]
		switch c.Kind {
		case BondCoord:
			fillBondRow(B, r, c.Atoms, geom)
		case AngleCoord:
			fillAngleRow(B, r, c.Atoms, geom)
		default:
			fillFiniteDifferenceRow(B, r, c, geom)
		}
	})
	return B
}

func setAtomGrad(B *v3.Matrix, row, atom int, g *v3.Matrix) {
	for d := 0; d < 3; d++ {
		B.Set(row, 3*atom+d, B.At(row, 3*atom+d)+g.At(0, d))
	}
}

// fillBondRow: for bond i-j, dr/dxi = e_ij, dr/dxj = -e_ij, where e_ij is
// the unit vector pointing from j to i.
func fillBondRow(B *v3.Matrix, row int, atoms []int, geom *v3.Matrix) {
	i, j := atoms[0], atoms[1]
	e := unit(sub(vec(geom, i), vec(geom, j)))
	setAtomGrad(B, row, i, e)
	neg := v3.ZeroVecs(1)
	neg.Scale(-1, e)
	setAtomGrad(B, row, j, neg)
}

// fillAngleRow fills the Wilson-Decius-Cross bending derivatives for
// angle (i,k,j), k the vertex:
//
//	dtheta/dxi = (cos(theta)*e1 - e2) / (r1 sin(theta))
//	dtheta/dxj = (cos(theta)*e2 - e1) / (r2 sin(theta))
//	dtheta/dxk = -(dtheta/dxi + dtheta/dxj)
func fillAngleRow(B *v3.Matrix, row int, atoms []int, geom *v3.Matrix) {
	i, k, j := atoms[0], atoms[1], atoms[2]
	vi, vk, vj := vec(geom, i), vec(geom, k), vec(geom, j)
	d1 := sub(vi, vk)
	d2 := sub(vj, vk)
	r1, r2 := d1.Norm(), d2.Norm()
	e1, e2 := unit(d1), unit(d2)

	theta := angleValue(i, k, j, geom)
	cosT, sinT := cosSin(theta)
	if sinT < appzeroIRC {
		return // degenerate: caller sees a zero row for an (already) linear angle
	}

	gi := v3.ZeroVecs(1)
	gi.Scale(cosT, e1)
	gi.Sub(gi, e2)
	gi.Scale(1/(r1*sinT), gi)

	gj := v3.ZeroVecs(1)
	gj.Scale(cosT, e2)
	gj.Sub(gj, e1)
	gj.Scale(1/(r2*sinT), gj)

	gk := v3.ZeroVecs(1)
	gk.Add(gi, gj)
	gk.Scale(-1, gk)

	setAtomGrad(B, row, i, gi)
	setAtomGrad(B, row, j, gj)
	setAtomGrad(B, row, k, gk)
}

func cosSin(theta float64) (float64, float64) {
	return math.Cos(theta), math.Sin(theta)
}

// fillFiniteDifferenceRow computes d(c.Value)/dx by central differences,
// touching only the atoms that define c: a cheap, numerically safe
// substitute for hand-derived torsion and out-of-plane formulas that is
// still exact to O(fdStep^2). It perturbs a private copy of geom rather
// than geom itself, so concurrent rows (see runPooled in WilsonBMatrix)
// never step on each other even when their atoms overlap.
func fillFiniteDifferenceRow(B *v3.Matrix, row int, c Coordinate, geom *v3.Matrix) {
	local := v3.ZeroVecs(geom.NVecs())
	local.Copy(geom)
	for _, atom := range c.Atoms {
		for d := 0; d < 3; d++ {
			orig := geom.At(atom, d)

			local.Set(atom, d, orig+fdStep)
			qp := c.Value(local)

			local.Set(atom, d, orig-fdStep)
			qm := c.Value(local)

			local.Set(atom, d, orig)

			delta := qp - qm
			delta = WrapDelta(c.Kind, delta)
			B.Set(row, 3*atom+d, delta/(2*fdStep))
		}
	}
}
