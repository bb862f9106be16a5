/*
 * histogram.go, part of mlbonds.
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

package chemplot

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/mlbonds/features"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Size of the saved plots.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Distance (A)"
	p.Y.Label.Text = "Pairs"
	p.Add(plotter.NewGrid())
	return p
}

type series struct {
	name   string
	values plotter.Values
}

// distanceSeries splits the pair distances of the tables into bonded and
// non-bonded pairs if all of them have predictions.
func distanceSeries(tables []*features.Table) ([]series, error) {
	all := series{name: "candidate pairs"}
	bonded := series{name: "bonded"}
	other := series{name: "not bonded"}
	split := true
	for _, T := range tables {
		d, err := T.Column(features.ColDistAB)
		if err != nil {
			return nil, err
		}
		all.values = append(all.values, d...)
		preds, err := T.Column(features.ColPredict)
		if err != nil {
			split = false
			continue
		}
		for i, v := range d {
			if preds[i] > 0 {
				bonded.values = append(bonded.values, v)
			} else {
				other.values = append(other.values, v)
			}
		}
	}
	if len(all.values) == 0 {
		return nil, ErrNoData
	}
	if !split {
		return []series{all}, nil
	}
	ret := make([]series, 0, 2)
	for _, s := range []series{bonded, other} {
		if len(s.values) > 0 {
			ret = append(ret, s)
		}
	}
	return ret, nil
}

// DistanceHistogram plots the histogram of the candidate pair distances in the
// tables, with bins bins, and saves it in filename. The image format is taken
// from the file extension. If every table has a prediction column, bonded and
// non-bonded pairs are drawn as separate histograms.
func DistanceHistogram(tables []*features.Table, bins int, title, filename string) error {
	if bins <= 0 {
		return errors.Newf("%d bins requested", bins)
	}
	data, err := distanceSeries(tables)
	if err != nil {
		return err
	}
	p := basicPlot(title)
	for i, s := range data {
		h, err := plotter.NewHist(s.values, bins)
		if err != nil {
			return errors.Wrapf(err, "histogram for %s", s.name)
		}
		c := seriesColor(i, len(data))
		c.A = 160
		h.FillColor = c
		p.Add(h)
		if len(data) > 1 {
			p.Legend.Add(s.name, h)
		}
	}
	if err := p.Save(Width, Height, filename); err != nil {
		return errors.Wrapf(err, "saving %s", filename)
	}
	return nil
}
