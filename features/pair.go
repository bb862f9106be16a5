/*
 * pair.go, part of mlbonds.
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

package features

import (
	"fmt"

	chem "github.com/rmera/mlbonds"
	"gonum.org/v1/gonum/mat"
)

// Pair is a canonical candidate pair of atoms (0-based indexes). A is the atom
// with the higher atomic number. For atoms of the same element A has the lower index.
type Pair struct {
	A, B int
}

// IDs returns the 1-based ids of the atoms in the pair, in canonical order.
func (P Pair) IDs() (int, int) {
	return P.A + 1, P.B + 1
}

func (P Pair) String() string {
	return fmt.Sprintf("%d-%d", P.A+1, P.B+1)
}

// Canonicalize returns the canonical Pair for the atoms i and j of mol. It gives
// the same result for (i,j) and (j,i), and canonicalizing an already canonical
// pair doesn't change it. Atoms with unknown symbols count as atomic number 0.
func Canonicalize(mol *chem.Molecule, i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	if mol.AtomicNumber(i) < mol.AtomicNumber(j) {
		return Pair{A: j, B: i}
	}
	return Pair{A: i, B: j}
}

// CandidatePairs returns the canonical pairs for all the atoms i<j with D[i][j] <= cutoff,
// ordered by i, then j.
func CandidatePairs(mol *chem.Molecule, D mat.Symmetric, cutoff float64) []Pair {
	n := D.SymmetricDim()
	pairs := make([]Pair, 0, 4*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if D.At(i, j) > cutoff {
				continue
			}
			pairs = append(pairs, Canonicalize(mol, i, j))
		}
	}
	return pairs
}
