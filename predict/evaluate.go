/*
 * evaluate.go, part of mlbonds.
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
	"go.uber.org/zap"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/features"
	"github.com/rmera/mlbonds/molfile"
)

// Evaluation compares the bond orders predicted for candidate pairs with
// reference ones.
type Evaluation struct {
	Pairs   int //candidate pairs compared
	Correct int //pairs with the reference bond order

	//bonded or not, regardless of the order
	TruePos, FalsePos, FalseNeg int
}

// Add accumulates the counts of o into E.
func (E *Evaluation) Add(o Evaluation) {
	E.Pairs += o.Pairs
	E.Correct += o.Correct
	E.TruePos += o.TruePos
	E.FalsePos += o.FalsePos
	E.FalseNeg += o.FalseNeg
}

// Accuracy returns the fraction of pairs with the correct bond order, 0 if
// there are no pairs.
func (E Evaluation) Accuracy() float64 {
	return ratio(E.Correct, E.Pairs)
}

// Precision returns the fraction of predicted bonds that are bonds in the
// reference.
func (E Evaluation) Precision() float64 {
	return ratio(E.TruePos, E.TruePos+E.FalsePos)
}

// Recall returns the fraction of reference bonds that were predicted.
func (E Evaluation) Recall() float64 {
	return ratio(E.TruePos, E.TruePos+E.FalseNeg)
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Evaluate predicts the bonds of mol and compares them, pair by pair, with
// the bonds ref gives.
func (P *Predictor) Evaluate(mol *chem.Molecule, ref features.BondLookup) (Evaluation, error) {
	var E Evaluation
	T, err := P.Table(mol)
	if err != nil {
		return E, err
	}
	preds, err := T.Column(features.ColPredict)
	if err != nil {
		return E, err
	}
	for i, label := range features.Label(T, ref) {
		want := int(label)
		got := molfile.PredictedOrder(preds[i])
		E.Pairs++
		if got == want {
			E.Correct++
		}
		switch {
		case got > 0 && want > 0:
			E.TruePos++
		case got > 0:
			E.FalsePos++
		case want > 0:
			E.FalseNeg++
		}
	}
	P.log.Debug("evaluated",
		zap.String("molecule", mol.Name()),
		zap.Int("pairs", E.Pairs),
		zap.Int("correct", E.Correct))
	return E, nil
}
