/*
 * distance.go, part of mlbonds.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the NxN matrix of euclidean distances between all the vectors
// in coords. The diagonal is zero and D[i][j]==D[j][i] exactly, as only the upper
// triangle is computed and stored. No cutoff is applied.
func DistanceMatrix(coords *v3.Matrix) *mat.SymDense {
	n := coords.NVecs()
	D := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		ri := coords.RawVec(i)
		for j := i + 1; j < n; j++ {
			D.SetSym(i, j, floats.Distance(ri, coords.RawVec(j), 2))
		}
	}
	return D
}

// Distances returns the distance matrix for the atoms of the molecule.
func (M *Molecule) Distances() *mat.SymDense {
	return DistanceMatrix(M.coords)
}
