/*
 * predictor.go, part of mlbonds.
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
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/features"
	"github.com/rmera/mlbonds/molfile"
)

// Predictor runs the whole bond perception pipeline for a molecule: feature
// extraction, classification and bond reconstruction. A Predictor can be used
// concurrently as long as its Classifier can.
type Predictor struct {
	model  Classifier
	opts   *features.Options
	schema *features.Schema
	charge int
	log    *zap.Logger
}

// NewPredictor returns a Predictor that classifies the tables built with opts using
// model. If opts is nil, features.DefaultOptions are used.
func NewPredictor(model Classifier, opts *features.Options) *Predictor {
	if opts == nil {
		opts = features.DefaultOptions()
	}
	return &Predictor{model: model, opts: opts, log: zap.NewNop()}
}

// SetLogger sets the logger used by P. A nil logger disables logging.
func (P *Predictor) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	P.log = log
}

// SetSchema sets the schema the model was trained with. Tables built by P will
// be checked against it before being classified.
func (P *Predictor) SetSchema(S *features.Schema) {
	P.schema = S
}

// SetCharge sets the net charge given to the molecules read by Batch, as xyz
// files carry no charge.
func (P *Predictor) SetCharge(q int) {
	P.charge = q
}

// Table returns the feature table of mol, with the predictions of the classifier
// in the additional column features.ColPredict. Molecules without candidate
// pairs are neither checked against the schema nor classified.
func (P *Predictor) Table(mol *chem.Molecule) (*features.Table, error) {
	T, err := features.Build(mol, P.opts)
	if err != nil {
		return nil, err
	}
	if P.schema != nil && T.Len() > 0 {
		if err := T.Schema().Check(P.schema); err != nil {
			return nil, err
		}
	}
	var preds []float64
	if T.Len() > 0 {
		preds, err = P.model.Predict(T.Dense())
		if err != nil {
			return nil, errors.Wrapf(err, "classifying %d pairs of %q", T.Len(), mol.Name())
		}
		if len(preds) != T.Len() {
			return nil, errors.Wrapf(ErrPredictionCount, "%d predictions for %d pairs", len(preds), T.Len())
		}
	}
	P.log.Debug("classified candidate pairs",
		zap.String("molecule", mol.Name()),
		zap.Int("atoms", mol.Len()),
		zap.Int("pairs", T.Len()))
	return T.WithColumn(features.ColPredict, preds)
}

// Bonds returns the bonds predicted for mol.
func (P *Predictor) Bonds(mol *chem.Molecule) ([]molfile.Bond, error) {
	T, err := P.Table(mol)
	if err != nil {
		return nil, err
	}
	return molfile.BondsFromTable(T, features.ColPredict)
}

// MolBlock returns the V2000 connection table for mol with the predicted bonds.
func (P *Predictor) MolBlock(mol *chem.Molecule) (string, error) {
	bonds, err := P.Bonds(mol)
	if err != nil {
		return "", err
	}
	return molfile.MolBlock(mol, bonds)
}
