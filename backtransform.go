/*
 * backtransform.go, part of goirc.
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
	"go.uber.org/zap"
)

// IrcToCartesianResult is the outcome of a back-transformation: the
// reconstructed Cartesian geometry, whether the iteration actually
// converged within budget, and how many Newton iterations it took
// (useful for tests and for callers tuning the starting guess).
type IrcToCartesianResult struct {
	XC          *v3.Matrix
	Converged   bool
	NIterations int
}

// wrappedDiff returns target-current, element by element, wrapping each
// element the way its coordinate kind requires.
func wrappedDiff(coords []Coordinate, target, current v3.Vector) v3.Vector {
	out := v3.ZeroVector(len(coords))
	for i, c := range coords {
		out[i] = WrapDelta(c.Kind, target[i]-current[i])
	}
	return out
}

// wrapTarget returns q_old+dq, wrapping each dihedral and linear-angle
// component into (-pi, pi] the same way WrapDelta wraps a residual: the
// sum of two values already in that range can fall outside it.
func wrapTarget(coords []Coordinate, qOld, dq v3.Vector) v3.Vector {
	target := v3.ZeroVector(len(coords))
	for i, c := range coords {
		target[i] = WrapDelta(c.Kind, qOld[i]+dq[i])
	}
	return target
}

// applyDisplacement returns a new geometry x + lambda*dx, where dx is a
// flat 3n Vector laid out the same way geom's rows are.
func applyDisplacement(geom *v3.Matrix, dx v3.Vector, lambda float64) *v3.Matrix {
	n := geom.NVecs()
	out := v3.ZeroVecs(n)
	out.Copy(geom)
	for i := 0; i < n; i++ {
		for d := 0; d < 3; d++ {
			out.Set(i, d, out.At(i, d)+lambda*dx[3*i+d])
		}
	}
	return out
}

// InternalToCartesianSingle computes one full Newton displacement
// dx = B^T G+ dqCurr at geometry x, where G = B B^T is pseudo-inverted via
// SVD: a single iteration of the loop InternalToCartesian repeats until
// convergence, exposed on its own for diagnostics and tests that want to
// inspect one step in isolation.
func InternalToCartesianSingle(coords []Coordinate, x *v3.Matrix, dqCurr v3.Vector) (v3.Vector, error) {
	B := WilsonBMatrix(coords, x)
	Bt := B.T()
	m := len(coords)
	G := v3.Zeros(m, m)
	G.Mul(B, Bt)

	Ginv, err := v3.Pinv(G, SVDCutoff)
	if err != nil {
		return nil, Errorf(NumericalFailure, "pseudo-inverting G matrix: %v", err)
	}

	dqCol := dqCurr.AsColMatrix()
	tmp := v3.Zeros(m, 1)
	tmp.Mul(Ginv, dqCol)

	n3 := x.NVecs() * 3
	dxCol := v3.Zeros(n3, 1)
	dxCol.Mul(Bt, tmp)

	return v3.VectorFromCol(dxCol, 0), nil
}

// internalToCartesianLoop runs the undamped Newton loop of up to
// MaxIterations steps towards target, starting from xOld with internal
// values qOld. It stops early with Converged true as soon as either
// tolerance is met, and stops early with Converged false if ||dx||_rms
// grows for two consecutive iterations (the divergence signal that sends
// InternalToCartesian to its step-halving fallback). Without convergence,
// XC is the geometry with the smallest internal-coordinate residual seen,
// the starting geometry included.
func internalToCartesianLoop(coords []Coordinate, target, qOld v3.Vector, xOld *v3.Matrix) (*IrcToCartesianResult, error) {
	x := v3.ZeroVecs(xOld.NVecs())
	x.Copy(xOld)

	dqCurr := wrappedDiff(coords, target, qOld)
	result := &IrcToCartesianResult{XC: x}
	bestX, bestRMS := x, dqCurr.RMS()
	prevDxRMS := math.Inf(1)
	grew := 0

	for iter := 1; iter <= MaxIterations; iter++ {
		result.NIterations = iter

		dx, err := InternalToCartesianSingle(coords, x, dqCurr)
		if err != nil {
			return nil, err
		}
		dxRMS := dx.RMS()

		x = applyDisplacement(x, dx, 1.0)
		result.XC = x

		q := CartesianToInternal(coords, x)
		dqCurr = wrappedDiff(coords, target, q)
		dqRMS := dqCurr.RMS()
		if dqRMS < bestRMS {
			bestX, bestRMS = x, dqRMS
		}

		if dxRMS < ConvergenceTolX || dqRMS < ConvergenceTolQ {
			result.Converged = true
			return result, nil
		}

		if dxRMS > prevDxRMS {
			grew++
			if grew >= 2 {
				break // diverging: let the step-halving fallback take over
			}
		} else {
			grew = 0
		}
		prevDxRMS = dxRMS
	}
	result.XC = bestX
	return result, nil
}

// InternalToCartesian runs the damped iterative Newton back-transformation
// described by internal_to_cartesian: given x_old, its internal values
// q_old, and a desired internal-space displacement dq, it drives x towards
// q_old+dq via internalToCartesianLoop. If that loop fails to converge or
// diverges, it falls back to bisecting dq: a halved step from x_old,
// followed (if that one converges) by a second halved step from there
// towards the original target, up to MaxHalvings bisections total before
// giving up and returning the best geometry of the last attempted loop.
func InternalToCartesian(coords []Coordinate, qOld, dq v3.Vector, xOld *v3.Matrix) (*IrcToCartesianResult, error) {
	if len(qOld) != len(coords) {
		return nil, Errorf(InvalidInput, "q_old has %d components, expected %d", len(qOld), len(coords))
	}
	if len(dq) != len(coords) {
		return nil, Errorf(InvalidInput, "dq has %d components, expected %d", len(dq), len(coords))
	}
	result, _, err := backtransformHalving(coords, qOld, dq, xOld, MaxHalvings)
	return result, err
}

func backtransformHalving(coords []Coordinate, qOld, dq v3.Vector, xOld *v3.Matrix, halvingsLeft int) (*IrcToCartesianResult, int, error) {
	target := wrapTarget(coords, qOld, dq)
	result, err := internalToCartesianLoop(coords, target, qOld, xOld)
	if err != nil {
		return nil, halvingsLeft, err
	}
	if result.Converged || halvingsLeft <= 0 {
		if !result.Converged {
			log.Warn("back-transformation did not converge within the step-halving budget",
				zap.Int("halvings_used", MaxHalvings-halvingsLeft))
		}
		return result, halvingsLeft, nil
	}

	half := dq.Scale(0.5)
	first, remaining, err := backtransformHalving(coords, qOld, half, xOld, halvingsLeft-1)
	if err != nil {
		return nil, remaining, err
	}
	if !first.Converged {
		return first, remaining, nil
	}

	qMid := CartesianToInternal(coords, first.XC)
	second, remaining, err := backtransformHalving(coords, qMid, half, first.XC, remaining)
	if err != nil {
		return nil, remaining, err
	}
	second.NIterations += first.NIterations
	return second, remaining, nil
}
