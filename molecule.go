/*
 * molecule.go, part of goirc.
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

import v3 "github.com/rmera/goirc/v3"

// Molecule pairs a set of Atoms with their Cartesian positions. Geom is
// always Nx3, one row per atom, in the same order as Atoms, and always
// in Bohr: everything downstream of ingestion (connectivity, coordinate
// evaluation, the Wilson matrix, back-transformation) works in atomic
// units.
type Molecule struct {
	Atoms []*Atom
	Geom  *v3.Matrix
}

// NewMolecule builds a Molecule from atoms and geom, which must already
// be in Bohr and have exactly len(atoms) rows. See LoadMoleculeXYZ for
// building one from an Angstrom-unit XYZ file.
func NewMolecule(atoms []*Atom, geom *v3.Matrix) (*Molecule, error) {
	if geom == nil {
		return nil, Errorf(InvalidInput, "nil geometry")
	}
	if geom.NVecs() != len(atoms) {
		return nil, Errorf(InvalidInput, "got %d atoms but %d coordinate rows", len(atoms), geom.NVecs())
	}
	return &Molecule{Atoms: atoms, Geom: geom}, nil
}

// Len returns the number of atoms in M.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Symbols returns the element symbol of each atom, in order.
func (M *Molecule) Symbols() []string {
	out := make([]string, len(M.Atoms))
	for i, a := range M.Atoms {
		out[i] = a.Symbol
	}
	return out
}

// Copy returns a deep copy of M.
func (M *Molecule) Copy() *Molecule {
	atoms := make([]*Atom, len(M.Atoms))
	for i, a := range M.Atoms {
		atoms[i] = a.Copy()
	}
	geom := v3.ZeroVecs(M.Geom.NVecs())
	geom.Copy(M.Geom)
	return &Molecule{Atoms: atoms, Geom: geom}
}

// ToBohr scales geom (read in Angstrom, the usual unit for an XYZ file)
// into Bohr in place.
func ToBohr(geom *v3.Matrix) {
	n := geom.NVecs()
	for i := 0; i < n; i++ {
		for d := 0; d < 3; d++ {
			geom.Set(i, d, geom.At(i, d)*A2Bohr)
		}
	}
}
