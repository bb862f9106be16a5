/*
 * neighbors.go, part of mlbonds.
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
	"sort"

	chem "github.com/rmera/mlbonds"
	"gonum.org/v1/gonum/mat"
)

// SortedNeighbors returns the indexes of all the atoms in D sorted by their distance
// to the atom p, closest first. p itself is included. Atoms at exactly the same
// distance keep their index order, so the result is reproducible.
func SortedNeighbors(D mat.Symmetric, p int) []int {
	n := D.SymmetricDim()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return D.At(p, order[i]) < D.At(p, order[j])
	})
	return order
}

// Neighbors returns the (at most) n atoms closest to p, which must be one of the atoms
// of pair, excluding both pair atoms.
func Neighbors(D mat.Symmetric, pair Pair, p, n int) []int {
	return firstNeighbors(SortedNeighbors(D, p), pair, n)
}

func firstNeighbors(sorted []int, pair Pair, n int) []int {
	ret := make([]int, 0, n)
	for _, v := range sorted {
		if len(ret) >= n {
			break
		}
		if v == pair.A || v == pair.B {
			continue
		}
		ret = append(ret, v)
	}
	return ret
}

// NeighborFeatures returns, for each of the (at most) n neighbors of the pair atom p,
// its atomic number, its distance to p and its distance to the other atom of the pair.
func NeighborFeatures(mol *chem.Molecule, D mat.Symmetric, pair Pair, p, n int) []float64 {
	return neighborFeatures(mol, D, pair, p, Neighbors(D, pair, p, n))
}

func neighborFeatures(mol *chem.Molecule, D mat.Symmetric, pair Pair, p int, neighs []int) []float64 {
	q := pair.B
	if p == pair.B {
		q = pair.A
	}
	ret := make([]float64, 0, 3*len(neighs))
	for _, v := range neighs {
		ret = append(ret, float64(mol.AtomicNumber(v)), D.At(p, v), D.At(q, v))
	}
	return ret
}
