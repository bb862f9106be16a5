/*
 * classifier.go, part of mlbonds.
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
	"math"

	"github.com/cockroachdb/errors"
	"github.com/dmitryikh/leaves"
	"gonum.org/v1/gonum/mat"
)

// Classifier predicts a bond label for each row of a feature matrix. Values
// larger than 0 mean a bond, and their rounded value is the bond order.
type Classifier interface {
	Predict(X *mat.Dense) ([]float64, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(X *mat.Dense) ([]float64, error)

func (f ClassifierFunc) Predict(X *mat.Dense) ([]float64, error) {
	return f(X)
}

// XGBoost is a gradient boosted tree ensemble trained with XGBoost.
type XGBoost struct {
	model   *leaves.Ensemble
	threads int
}

// LoadXGBoost reads the XGBoost binary model in the file path. Predictions use up
// to threads goroutines.
func LoadXGBoost(path string, threads int) (*XGBoost, error) {
	model, err := leaves.XGEnsembleFromFile(path, false)
	if err != nil {
		return nil, errors.Wrapf(ErrModel, "loading %s: %v", path, err)
	}
	return &XGBoost{model: model, threads: max(1, threads)}, nil
}

// Features returns the number of features the model expects.
func (B *XGBoost) Features() int {
	return B.model.NFeatures()
}

// Classes returns the number of outputs per row of the model. It is larger than 1
// for multi-class models.
func (B *XGBoost) Classes() int {
	return B.model.NOutputGroups()
}

// Predict returns one prediction per row of X. For multi-class models the prediction
// is the index of the class with the highest score.
func (B *XGBoost) Predict(X *mat.Dense) ([]float64, error) {
	rows, cols := X.Dims()
	if cols != B.Features() {
		return nil, errors.Wrapf(ErrModel, "model expects %d features, got %d", B.Features(), cols)
	}
	raw := X.RawMatrix()
	vals := raw.Data
	if raw.Stride != cols {
		vals = mat.DenseCopyOf(X).RawMatrix().Data
	}
	groups := B.Classes()
	scores := make([]float64, rows*groups)
	if err := B.model.PredictDense(vals, rows, cols, scores, 0, B.threads); err != nil {
		return nil, errors.Wrap(err, "XGBoost prediction")
	}
	if groups == 1 {
		return scores, nil
	}
	preds := make([]float64, rows)
	for i := range preds {
		preds[i] = float64(argmax(scores[i*groups : (i+1)*groups]))
	}
	return preds, nil
}

func argmax(v []float64) int {
	best, ret := math.Inf(-1), 0
	for i, s := range v {
		if s > best {
			best, ret = s, i
		}
	}
	return ret
}
