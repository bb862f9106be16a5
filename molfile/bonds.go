/*
 * bonds.go, part of mlbonds.
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

package molfile

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/rmera/mlbonds/features"
)

// Bond joins the atoms with the 1-based ids From and To.
type Bond struct {
	From, To, Order int
}

// BondsFromTable returns one bond for each row of T whose value in the column
// is larger than 0, in row order. The bond order is the rounded value, and at
// least 1. The lower atom id is always given as From. If T lacks the column,
// the error wraps ErrNoPredictions.
func BondsFromTable(T *features.Table, column string) ([]Bond, error) {
	preds, err := T.Column(column)
	if err != nil {
		return nil, errors.Wrapf(ErrNoPredictions, "%v", err)
	}
	rows := lo.Filter(lo.Range(len(preds)), func(i int, _ int) bool {
		return preds[i] > 0
	})
	return lo.Map(rows, func(i int, _ int) Bond {
		id1, id2 := T.Pair(i).IDs()
		if id1 > id2 {
			id1, id2 = id2, id1
		}
		return Bond{From: id1, To: id2, Order: PredictedOrder(preds[i])}
	}), nil
}

// PredictedOrder returns the bond order a classifier output stands for: 0 (no
// bond) for values not larger than 0, otherwise the rounded value, at least 1.
func PredictedOrder(pred float64) int {
	if pred <= 0 {
		return 0
	}
	return max(1, int(math.Round(pred)))
}
