/*
 * batch.go, part of mlbonds.
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
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/chemgraph"
	"github.com/rmera/mlbonds/molfile"
)

// Result is the outcome of the prediction for one file.
type Result struct {
	File     string
	Molecule *chem.Molecule
	Bonds    []molfile.Bond
	// Fragments is the number of connected components of the bond graph.
	Fragments int
	Err       error
}

// Batch reads the xyz files and predicts their bonds, using up to workers goroutines
// (the number of CPUs if workers is not positive). A file that fails doesn't stop
// the others: the returned slice has one Result per file, in the same order, and
// the returned error combines the errors of all the failed files. If ctx is
// canceled, the files not started yet fail with the context error.
func (P *Predictor) Batch(ctx context.Context, files []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range files {
		results[i].File = name
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		i, name := i, name
		g.Go(func() error {
			results[i] = P.file(gctx, name)
			return nil
		})
	}
	g.Wait()
	var errs error
	for _, r := range results {
		if r.Err != nil {
			errs = multierr.Append(errs, errors.Wrap(r.Err, r.File))
		}
	}
	return results, errs
}

func (P *Predictor) file(ctx context.Context, name string) Result {
	r := Result{File: name}
	if r.Err = ctx.Err(); r.Err != nil {
		return r
	}
	mol, err := chem.XYZFileRead(name)
	if err != nil {
		P.log.Warn("reading geometry", zap.String("file", name), zap.Error(err))
		r.Err = err
		return r
	}
	r.Molecule = mol.WithCharge(P.charge)
	r.Bonds, r.Err = P.Bonds(r.Molecule)
	if r.Err != nil {
		P.log.Warn("predicting bonds", zap.String("file", name), zap.Error(r.Err))
		return r
	}
	top, err := chemgraph.TopologyFromBonds(r.Molecule, r.Bonds)
	if err != nil {
		r.Err = err
		return r
	}
	r.Fragments = len(top.Fragments())
	P.log.Debug("predicted bonds",
		zap.String("file", name),
		zap.Int("bonds", len(r.Bonds)),
		zap.Int("fragments", r.Fragments))
	return r
}
