/*
 * covalent.go, part of mlbonds.
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

package predict

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/features"
)

const (
	// DefaultBondTolerance is added to the sum of covalent radii of two atoms
	// to get the longest distance at which they are considered bonded.
	DefaultBondTolerance = 0.45
	// DefaultTooClose is the distance below which two atoms are not considered
	// bonded, as they are most likely an artifact.
	DefaultTooClose = 0.63
)

// Covalent is a model-free Classifier that assigns single bonds from the covalent
// radii of the atoms, similar to DOI:10.1186/1758-2946-3-33. Two atoms are bonded
// if their distance is between TooClose and the sum of their covalent radii plus
// Tolerance. Atoms with more bonds than they can have lose their longest bonds.
type Covalent struct {
	Tolerance float64
	TooClose  float64
}

// NewCovalent returns a Covalent classifier with the default tolerances.
func NewCovalent() *Covalent {
	return &Covalent{Tolerance: DefaultBondTolerance, TooClose: DefaultTooClose}
}

var pairColumns = features.NewSchema(0, features.DefaultCutoff)

type covBond struct {
	row    int
	id1    int
	id2    int
	length float64
}

// Predict returns 1 for each row of X whose pair is bonded, and 0 otherwise. X must
// have the columns of a feature table. Elements without a known covalent radius
// are an error.
func (C *Covalent) Predict(X *mat.Dense) ([]float64, error) {
	rows, cols := X.Dims()
	if cols < pairColumns.Width() {
		return nil, errors.Wrapf(ErrModel, "covalent bonds need %d columns, got %d", pairColumns.Width(), cols)
	}
	col := func(name string) int { return pairColumns.Index(name) }
	preds := make([]float64, rows)
	atoms := make(map[int][]covBond)
	zs := make(map[int]int)
	for i := 0; i < rows; i++ {
		za, zb := int(X.At(i, col(features.ColZA))), int(X.At(i, col(features.ColZB)))
		ra, rb := chem.CovalentRadius(za), chem.CovalentRadius(zb)
		if ra == 0 || rb == 0 {
			return nil, errors.Wrapf(ErrModel, "no covalent radius for elements %s, %s in row %d", chem.Symbol(za), chem.Symbol(zb), i)
		}
		d := X.At(i, col(features.ColDistAB))
		if d >= ra+rb+C.Tolerance || d <= C.TooClose {
			continue
		}
		b := covBond{row: i, id1: int(X.At(i, col(features.ColID1))), id2: int(X.At(i, col(features.ColID2))), length: d}
		atoms[b.id1] = append(atoms[b.id1], b)
		atoms[b.id2] = append(atoms[b.id2], b)
		zs[b.id1], zs[b.id2] = za, zb
		preds[i] = 1
	}
	ids := make([]int, 0, len(atoms))
	for id := range atoms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		maxb := chem.MaxBonds(zs[id])
		if maxb == 0 {
			continue
		}
		bonds := atoms[id][:0]
		for _, b := range atoms[id] {
			if preds[b.row] > 0 {
				bonds = append(bonds, b)
			}
		}
		sort.SliceStable(bonds, func(i, j int) bool { return bonds[i].length < bonds[j].length })
		for _, b := range bonds[min(maxb, len(bonds)):] {
			preds[b.row] = 0
		}
	}
	return preds, nil
}
