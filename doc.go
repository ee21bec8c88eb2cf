/*
 * doc.go, part of goirc.
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

/*
Package irc converts molecular Cartesian geometry into internal redundant
coordinates, and back.

Given a Molecule, Connectivity builds its bond graph and the redundant set
of bonds, angles, dihedrals, linear angles and out-of-plane bends it
implies (InferConnectivity and EnumerateCoordinates do the same work
separately, for callers that want the graph or the coordinate list on its
own). CartesianToInternal evaluates those coordinates.
WilsonBMatrix gives the Jacobian relating Cartesian displacements to those
internal coordinates, and InternalToCartesian(Single) run the
SVD-regularized Newton iteration that goes the other way: from a step in
internal-coordinate space back to a Cartesian geometry, falling back to
recursive step-halving when the iteration diverges.

Package v3, a sibling package, carries the matrix and vector plumbing this
package is built on.
*/
package irc
