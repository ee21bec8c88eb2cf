/*
 * atom.go, part of goirc.
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

/*Note: CovalentRadius and VdwRadius panic instead of returning errors, the same way
 * gochem's fundamental Atom accessors do: an atom with an unrecognized symbol means the
 * caller built it wrong, and that should fail loudly and immediately, not a few calls
 * down the line.*/

// Atom holds everything this package needs to know about one atom: its
// element and, derived from that, the two radii connectivity inference
// runs on. Coordinates for a set of Atoms live separately, in a
// *v3.Matrix, the same split gochem's Atom/Topology keeps.
type Atom struct {
	Symbol string
	Id     int
}

// NewAtom builds an Atom for the given element symbol, and errors if the
// symbol isn't in the periodic table this package knows about or has no
// covalent or van der Waals radius there.
func NewAtom(symbol string, id int) (*Atom, error) {
	if _, ok := symbolZ[symbol]; !ok {
		return nil, Errorf(InvalidInput, "unknown element symbol %q", symbol)
	}
	_, okCov := symbolCovrad[symbol]
	_, okVdw := symbolVdwrad[symbol]
	if !okCov || !okVdw {
		return nil, Errorf(InvalidInput, "no radius data for element symbol %q", symbol)
	}
	return &Atom{Symbol: symbol, Id: id}, nil
}

// CovalentRadius returns A's covalent radius in Angstrom. Panics if A's
// symbol somehow isn't in the table, which NewAtom should have already
// prevented.
func (A *Atom) CovalentRadius() float64 {
	r, ok := symbolCovrad[A.Symbol]
	if !ok {
		panic("goirc: atom with unknown symbol " + A.Symbol)
	}
	return r
}

// VdwRadius returns A's van der Waals radius in Angstrom.
func (A *Atom) VdwRadius() float64 {
	r, ok := symbolVdwrad[A.Symbol]
	if !ok {
		panic("goirc: atom with unknown symbol " + A.Symbol)
	}
	return r
}

// IsHydrogen reports whether A is a hydrogen atom, the single most
// common special case in connectivity inference and H-bond detection.
func (A *Atom) IsHydrogen() bool {
	return A.Symbol == "H"
}

// HydrogenBondCapable reports whether A's element is one of the
// electronegative heavy atoms this package accepts as a hydrogen-bond
// donor/acceptor.
func (A *Atom) HydrogenBondCapable() bool {
	return IsHydrogenBondCapable(A.Symbol)
}

// Copy returns a copy of A.
func (A *Atom) Copy() *Atom {
	return &Atom{Symbol: A.Symbol, Id: A.Id}
}
