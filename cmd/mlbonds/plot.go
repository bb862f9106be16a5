package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/chemplot"
	"github.com/rmera/mlbonds/features"
)

type plotOptions struct {
	out     string
	bins    int
	title   string
	predict bool
}

func newPlotCmd(a *app) *cobra.Command {
	o := new(plotOptions)
	cmd := &cobra.Command{
		Use:   "plot FILE|DIR...",
		Short: "Plot the histogram of candidate pair distances",
		Long: `Plot the histogram of the distances of the candidate pairs of the molecules
in the given xyz files. With --predict, bonded and non-bonded pairs, according
to the configured model, are drawn separately. The image format is taken from
the --out extension.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlot(o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.out, "out", "hist.png", "output image")
	f.IntVar(&o.bins, "bins", 30, "number of bins")
	f.StringVar(&o.title, "title", "Candidate pair distances", "plot title")
	f.BoolVar(&o.predict, "predict", false, "split the pairs by predicted bonds")
	f.Float64("cutoff", 0, "maximum distance for candidate pairs, in A")
	addModelFlags(cmd)
	return cmd
}

func (a *app) runPlot(o *plotOptions, args []string) error {
	var tables []*features.Table
	if !o.predict {
		_, t, err := a.buildTables(args, 0)
		if err != nil {
			return err
		}
		tables = t
	} else {
		files, err := xyzInputs(args)
		if err != nil {
			return err
		}
		P, err := a.predictor()
		if err != nil {
			return err
		}
		for _, name := range files {
			mol, err := chem.XYZFileRead(name)
			if err != nil {
				return err
			}
			T, err := P.Table(mol)
			if err != nil {
				return err
			}
			tables = append(tables, T)
		}
	}
	if err := chemplot.DistanceHistogram(tables, o.bins, o.title, o.out); err != nil {
		return err
	}
	a.log.Info("histogram written", zap.String("file", o.out), zap.Int("molecules", len(tables)))
	return nil
}
