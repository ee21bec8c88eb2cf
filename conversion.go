/*
 * conversion.go, part of goirc.
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

package irc

// Unit conversions and the thresholds that drive connectivity inference
// and back-transformation.
const (
	Deg2Rad = 0.017453292519943295
	Rad2Deg = 1 / Deg2Rad

	// A2Bohr converts Angstrom to Bohr. Molecule geometry is handled
	// internally in Bohr throughout this package; LoadMoleculeXYZ applies
	// this on the way in.
	A2Bohr = 1.8897261339
	Bohr2A = 1 / A2Bohr
)

const (
	// CovalentBondFactor (alpha) scales the sum of two atoms' covalent
	// radii into the cutoff distance used to call a bond covalent.
	CovalentBondFactor = 1.3

	// FragmentStitchFactor (beta) scales the closest cross-fragment
	// distance d* into the cutoff used when joining disconnected
	// fragments: besides the closest pair, every cross pair closer than
	// min(beta*d*, 2 Angstrom) is bonded.
	FragmentStitchFactor = 1.3

	// HydrogenBondFactor (gamma) scales the sum of van der Waals radii
	// into the cutoff distance for the hydrogen-bond phase.
	HydrogenBondFactor = 0.9

	// HydrogenBondMinAngle is the minimum donor-H...acceptor angle, in
	// radians, for a candidate contact to be called a hydrogen bond.
	HydrogenBondMinAngle = 90 * Deg2Rad

	// LinearAngleThreshold is the angle, in radians, above which a bond
	// angle is treated as linear (tagged LinearAngle instead of Angle).
	// 175 degrees.
	LinearAngleThreshold = 3.0543261909900767

	// SVDCutoff is the relative singular-value cutoff used when
	// pseudo-inverting the G matrix during back-transformation.
	SVDCutoff = 1e-6

	// ConvergenceTolX is the Cartesian RMS displacement below which the
	// back-transformation iteration is considered converged.
	ConvergenceTolX = 1e-6

	// ConvergenceTolQ is the internal-coordinate RMS residual below
	// which the back-transformation iteration is considered converged.
	ConvergenceTolQ = 1e-6

	// MaxIterations bounds the back-transformation Newton loop.
	MaxIterations = 25

	// MaxHalvings bounds the step-halving fallback of the
	// back-transformation: the number of times the whole internal
	// displacement dq may be bisected and retried from the starting
	// geometry when the Newton loop fails to converge or diverges.
	MaxHalvings = 8
)
