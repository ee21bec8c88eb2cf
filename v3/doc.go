/*
 * doc.go, part of goirc.
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

/*
Package v3 is the thin linear-algebra façade used by the rest of goirc.

Matrix wraps gonum's mat.Dense and adds the "vector of 3D points" view
that the coordinate code wants: rows are atoms, columns are x, y, z.
Vector is the flat representation used for internal-coordinate values
and Cartesian displacement vectors, where there is no natural 3-column
shape to exploit.

The BLAS backend gonum uses is chosen at init time by build tag: without
tags, gonum's pure-Go implementation is registered; the "cblas" tag
selects init_cblas.go instead, for callers that have a system BLAS
available.
*/
package v3
