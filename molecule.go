/*
 * molecule.go, part of mlbonds.
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

package chem

import (
	v3 "github.com/rmera/mlbonds/v3"
)

// Molecule contains the atoms and coordinates of one geometry, together with
// its net charge and the free-text metadata of the file it was read from.
// A Molecule is not modified after construction, so it can be shared freely.
type Molecule struct {
	symbols []string
	coords  *v3.Matrix
	charge  int
	name    string
	info    string
}

// NewMolecule makes a molecule with the given element symbols, coordinates and net
// charge, and returns it. It returns an error if the number of symbols doesn't match
// the number of coordinates, or if there are no atoms. The symbols are not checked
// against the periodic table. Both slices are copied.
func NewMolecule(symbols []string, coords *v3.Matrix, charge int) (*Molecule, error) {
	if coords == nil {
		return nil, newCError(ErrAtomCount, "NewMolecule", "nil coordinates given for %d atoms", len(symbols))
	}
	if len(symbols) == 0 {
		return nil, newCError(ErrAtomCount, "NewMolecule", "molecule without atoms")
	}
	if n := coords.NVecs(); n != len(symbols) {
		return nil, newCError(ErrAtomCount, "NewMolecule", "%d atoms, %d coordinates", len(symbols), n)
	}
	M := new(Molecule)
	M.symbols = make([]string, len(symbols))
	copy(M.symbols, symbols)
	M.coords = coords.Copy()
	M.charge = charge
	return M, nil
}

// Named returns a copy of the molecule with the given name and info line.
// The receiver is not modified.
func (M *Molecule) Named(name, info string) *Molecule {
	N := *M
	N.name = name
	N.info = info
	return &N
}

// WithCharge returns a copy of the molecule with the given net charge.
func (M *Molecule) WithCharge(charge int) *Molecule {
	N := *M
	N.charge = charge
	return &N
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.symbols)
}

// Symbol returns the element symbol of the ith atom. Panics if out of range.
func (M *Molecule) Symbol(i int) string {
	return M.symbols[i]
}

// AtomicNumber returns the atomic number of the ith atom, 0 if its symbol
// is not an element.
func (M *Molecule) AtomicNumber(i int) int {
	return AtomicNumber(M.symbols[i])
}

// Symbols returns a copy of the element symbols, in atom order.
func (M *Molecule) Symbols() []string {
	r := make([]string, len(M.symbols))
	copy(r, M.symbols)
	return r
}

// Coords returns a copy of the coordinates.
func (M *Molecule) Coords() *v3.Matrix {
	return M.coords.Copy()
}

// Coord returns a copy of the coordinates of the ith atom.
func (M *Molecule) Coord(i int) []float64 {
	return M.coords.Vec(nil, i)
}

// Charge returns the net formal charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

// Name returns the name of the molecule.
func (M *Molecule) Name() string {
	return M.name
}

// Info returns the info (comment) line of the geometry the molecule was read from.
func (M *Molecule) Info() string {
	return M.info
}
