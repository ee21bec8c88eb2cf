/*
 * pinv.go, part of goirc.
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

	"gonum.org/v1/gonum/mat"
)

// DefaultSVDCutoff is the relative singular-value cutoff used by Pinv
// when the caller does not supply one: singular values below
// cutoff*(largest singular value) are treated as zero and dropped from
// the pseudoinverse, the usual way of taming a near-singular G matrix at
// a linear or near-linear geometry.
const DefaultSVDCutoff = 1e-6

// Pinv returns the Moore-Penrose pseudoinverse of A, computed from a
// full singular value decomposition. Singular values smaller than
// cutoff*sigma_max are dropped instead of inverted.
func Pinv(A *Matrix, cutoff float64) (*Matrix, error) {
	var svd mat.SVD
	ok := svd.Factorize(A.Dense, mat.SVDFull)
	if !ok {
		return nil, fmt.Errorf("v3: SVD factorization failed")
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	r, c := A.Dims()
	k := len(values)

	var sigmaMax float64
	for _, s := range values {
		if s > sigmaMax {
			sigmaMax = s
		}
	}
	thresh := cutoff * sigmaMax

	// Build V * Sigma+ * Ut directly, skipping singular values at or
	// below thresh.
	out := Zeros(c, r)
	ur, _ := u.Dims()
	vr, _ := v.Dims()
	for i := 0; i < k; i++ {
		if values[i] <= thresh {
			continue
		}
		inv := 1.0 / values[i]
		for a := 0; a < vr; a++ {
			va := v.At(a, i)
			if va == 0 {
				continue
			}
			for b := 0; b < ur; b++ {
				out.Set(a, b, out.At(a, b)+va*inv*u.At(b, i))
			}
		}
	}
	return out, nil
}
