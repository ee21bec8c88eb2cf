/*
 * matrix.go, part of goirc.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 1e-12 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Matrix is the dense-matrix backend for the whole module: the Wilson B
// matrix, G = B*Bt, its pseudoinverse, and the Nx3 Cartesian coordinate
// matrices are all a Matrix. The Vec* methods only make sense when the
// matrix has exactly 3 columns, in which case each row is understood as
// the (x,y,z) of one atom, same convention as gochem's VecMatrix.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled, rows x cols Matrix.
func Zeros(rows, cols int) *Matrix {
	return &Matrix{mat.NewDense(rows, cols, make([]float64, rows*cols))}
}

// ZeroVecs returns a zero-filled Matrix with n rows and 3 columns, i.e. n
// atomic position vectors.
func ZeroVecs(n int) *Matrix {
	return Zeros(n, 3)
}

// NewMatrix builds a Matrix with the given shape from data, which must be
// laid out row-major (the same convention mat.NewDense uses).
func NewMatrix(data []float64, rows, cols int) (*Matrix, error) {
	if len(data) < rows*cols {
		return nil, fmt.Errorf("v3: not enough elements for a %dx%d matrix: got %d", rows, cols, len(data))
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NewVecs builds an Nx3 Matrix from a flat, row-major slice of 3*N floats.
func NewVecs(data []float64) (*Matrix, error) {
	if len(data)%3 != 0 {
		return nil, fmt.Errorf("v3: input length %d is not divisible by 3", len(data))
	}
	return NewMatrix(data, len(data)/3, 3)
}

// NVecs returns the number of rows in F, and panics if F does not have
// exactly 3 columns: NVecs only makes sense for Cartesian coordinate
// matrices.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic("v3: NVecs called on a matrix that doesn't have 3 columns")
	}
	return r
}

// VecView returns a view of the ith row of F as a 1x3 Matrix. Writes to
// the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	_, c := F.Dims()
	return &Matrix{F.Dense.Slice(i, i+1, 0, c).(*mat.Dense)}
}

// RowView is an alias for VecView, kept for readability when F isn't
// conceptually a set of atomic positions.
func (F *Matrix) RowView(i int) *Matrix {
	return F.VecView(i)
}

// ColView returns a view of the jth column of F as an Rx1 Matrix.
func (F *Matrix) ColView(j int) *Matrix {
	r, _ := F.Dims()
	return &Matrix{F.Dense.Slice(0, r, j, j+1).(*mat.Dense)}
}

// Copy copies the values of A into F. Panics on shape mismatch.
func (F *Matrix) Copy(A *Matrix) {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar || fc != ac {
		panic("v3: shape mismatch in Copy")
	}
	F.Dense.Copy(A.Dense)
}

// Add puts A+B in F. Panics on shape mismatch.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

// Sub puts A-B in F. Panics on shape mismatch.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

// Scale puts f*A in F.
func (F *Matrix) Scale(f float64, A *Matrix) {
	F.Dense.Scale(f, A.Dense)
}

// Mul puts A*B in F, with the usual matrix-multiplication shape rules.
func (F *Matrix) Mul(A, B *Matrix) {
	F.Dense.Mul(A.Dense, B.Dense)
}

// T returns a new Matrix holding the transpose of F.
func (F *Matrix) T() *Matrix {
	r, c := F.Dims()
	out := Zeros(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, F.At(i, j))
		}
	}
	return out
}

// AddVec adds the 1x3 row vector vec to every row of A, leaving the
// result in F.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	if F != A {
		F.Copy(A)
	}
	v := []float64{vec.At(0, 0), vec.At(0, 1), vec.At(0, 2)}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			F.Set(i, j, F.At(i, j)+v[j])
		}
	}
}

// SubVec subtracts the 1x3 row vector vec from every row of A, leaving
// the result in F.
func (F *Matrix) SubVec(A, vec *Matrix) {
	neg := ZeroVecs(1)
	neg.Scale(-1, vec)
	F.AddVec(A, neg)
}

// Dot returns the dot product of F and B, which must have identical
// shape. Most commonly used on two 1x3 vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	fr, fc := F.Dims()
	br, bc := B.Dims()
	if fr != br || fc != bc {
		panic("v3: shape mismatch in Dot")
	}
	var sum float64
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			sum += F.At(i, j) * B.At(i, j)
		}
	}
	return sum
}

// Norm returns the Frobenius (or, for a single row/column, Euclidean)
// norm of F.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(F.Dot(F))
}

// Unit normalizes A and leaves the result in F.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	if n <= appzero {
		panic("v3: attempted to normalize a zero-length vector")
	}
	F.Scale(1.0/n, A)
}

// Cross puts the cross product of the 1x3 vectors a and b into the 1x3
// Matrix F.
func (F *Matrix) Cross(a, b *Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != 1 || ac != 3 || br != 1 || bc != 3 {
		panic("v3: Cross needs two 1x3 vectors")
	}
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

// String returns a readable representation of F, mostly for debugging
// and test failure messages.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense))
}
