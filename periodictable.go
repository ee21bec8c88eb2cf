/*
 * periodictable.go, part of goirc.
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

// symbolZ maps element symbols to atomic number. Just the common
// "bio-elements" plus a handful of metals; it also lists He, Li, B, Ne,
// Al and Ar, which have no entry in the radius tables below.
var symbolZ = map[string]int{
	"H": 1, "He": 2,
	"Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Cu": 29, "Zn": 30,
	"Se": 34, "Br": 35, "I": 53,
}

// symbolCovrad holds covalent radii, in Angstrom, from Cordero et al.,
// 2008 (DOI:10.1039/B801115J).
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"C":  0.76, // sp3
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5, // hs
	"Fe": 1.52,
	"Mn": 1.61,
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

// symbolVdwrad holds van der Waals radii, in Angstrom, from
// 10.1021/j100785a001 and 10.1021/jp8111556; metal radii from
// 10.1023/A:1011625728803.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

// hbondCapable is the set of elements that can act as a hydrogen-bond
// donor heavy atom or acceptor: the electronegative atoms classically
// considered in H-bond geometric criteria.
var hbondCapable = map[string]bool{
	"N":  true,
	"O":  true,
	"F":  true,
	"P":  true,
	"S":  true,
	"Cl": true,
}

// AtomicNumber returns the atomic number for symbol, and false if symbol
// isn't in the table.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := symbolZ[symbol]
	return z, ok
}

// CovalentRadius returns the covalent radius of symbol, in Angstrom, and
// false if symbol isn't in the table.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

// VdwRadius returns the van der Waals radius of symbol, in Angstrom, and
// false if symbol isn't in the table.
func VdwRadius(symbol string) (float64, bool) {
	r, ok := symbolVdwrad[symbol]
	return r, ok
}

// IsHydrogenBondCapable reports whether symbol belongs to the set of
// elements considered as hydrogen-bond donor/acceptor heavy atoms.
func IsHydrogenBondCapable(symbol string) bool {
	return hbondCapable[symbol]
}
