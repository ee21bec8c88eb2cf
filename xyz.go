/*
 * xyz.go, part of goirc.
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

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/goirc/v3"
)

// LoadMoleculeXYZ reads a standard two-header-line XYZ file (atom count,
// a comment line, then one "Symbol x y z" line per atom, coordinates in
// Angstrom) and returns the corresponding Molecule, with Geom already
// converted to Bohr.
func LoadMoleculeXYZ(filename string) (*Molecule, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Errorf(InvalidInput, "opening %s: %v", filename, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, Errorf(InvalidInput, "%s: ill-formed XYZ file, missing atom count line", filename)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, Errorf(InvalidInput, "%s: ill-formed XYZ file, bad atom count: %v", filename, err)
	}

	// The second line is a free-form comment/title; we don't care about it.
	if _, err := r.ReadString('\n'); err != nil && natoms > 0 {
		return nil, Errorf(InvalidInput, "%s: ill-formed XYZ file, missing comment line", filename)
	}

	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = r.ReadString('\n')
		if err != nil && line == "" {
			return nil, Errorf(InvalidInput, "%s: line %d: unexpected end of file", filename, i+3)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Errorf(InvalidInput, "%s: line %d: expected \"Symbol x y z\"", filename, i+3)
		}
		at, err := NewAtom(fields[0], i)
		if err != nil {
			return nil, err
		}
		atoms[i] = at
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, Errorf(InvalidInput, "%s: line %d: bad coordinate %q", filename, i+3, fields[k+1])
			}
			coords[i*3+k] = v
		}
	}

	geom, err := v3.NewVecs(coords)
	if err != nil {
		return nil, Errorf(InvalidInput, "%s: %v", filename, err)
	}
	ToBohr(geom)
	return &Molecule{Atoms: atoms, Geom: geom}, nil
}

// WriteMoleculeXYZ writes M to filename as a standard XYZ file, with
// coordinates converted from Bohr back to Angstrom. comment is written
// verbatim as the file's second line.
func WriteMoleculeXYZ(M *Molecule, filename, comment string) error {
	out, err := os.Create(filename)
	if err != nil {
		return Errorf(InvalidInput, "creating %s: %v", filename, err)
	}
	defer out.Close()

	fmt.Fprintf(out, "%-4d\n", M.Len())
	fmt.Fprintf(out, "%s\n", comment)
	for i, a := range M.Atoms {
		x := M.Geom.At(i, 0) * Bohr2A
		y := M.Geom.At(i, 1) * Bohr2A
		z := M.Geom.At(i, 2) * Bohr2A
		if _, err := fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f\n", a.Symbol, x, y, z); err != nil {
			return Errorf(InvalidInput, "writing %s: %v", filename, err)
		}
	}
	return nil
}
