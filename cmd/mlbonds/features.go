package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/features"
)

type featuresOptions struct {
	format   string
	out      string
	schema   string
	describe bool
	charge   int
}

func newFeaturesCmd(a *app) *cobra.Command {
	o := new(featuresOptions)
	cmd := &cobra.Command{
		Use:   "features FILE|DIR...",
		Short: "Export the feature tables of the molecules in xyz files",
		Long: `Build the feature table of each molecule and write the rows of all of them,
in input order, as CSV or as a NumPy array. Outputs ending in .gz or .zst are
compressed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFeatures(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.format, "format", "csv", "output format: csv or npy")
	f.StringVar(&o.out, "out", "-", "output file")
	f.StringVar(&o.schema, "schema-out", "", "also write the feature schema to this file")
	f.BoolVar(&o.describe, "describe", false, "print column statistics instead of the table")
	f.IntVar(&o.charge, "charge", 0, "net charge of the molecules")
	f.Float64("cutoff", 0, "maximum distance for candidate pairs, in A")
	return cmd
}

// buildTables reads the xyz inputs and builds their feature tables.
func (a *app) buildTables(args []string, charge int) ([]string, []*features.Table, error) {
	files, err := xyzInputs(args)
	if err != nil {
		return nil, nil, err
	}
	opts := a.cfg.FeatureOptions()
	tables := make([]*features.Table, 0, len(files))
	for _, name := range files {
		mol, err := chem.XYZFileRead(name)
		if err != nil {
			return nil, nil, err
		}
		T, err := features.Build(mol.WithCharge(charge), opts)
		if err != nil {
			return nil, nil, errors.Wrap(err, name)
		}
		a.log.Debug("features built", zap.String("file", name), zap.Int("pairs", T.Len()))
		tables = append(tables, T)
	}
	return files, tables, nil
}

func (a *app) runFeatures(cmd *cobra.Command, o *featuresOptions, args []string) error {
	var write func(io.Writer, *features.Table) error
	switch o.format {
	case "csv":
		write = features.WriteCSV
	case "npy":
		write = features.WriteNPY
	default:
		return errors.Newf("unknown format %q", o.format)
	}
	_, tables, err := a.buildTables(args, o.charge)
	if err != nil {
		return err
	}
	T, err := features.Concat(tables...)
	if err != nil {
		return err
	}
	if o.schema != "" {
		if err := features.SaveSchema(o.schema, T.Schema()); err != nil {
			return err
		}
	}
	if o.describe {
		return printStats(cmd.OutOrStdout(), features.Describe(T))
	}
	out, err := output(o.out, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := write(out, T); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printStats(w io.Writer, stats []features.ColumnStats) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tmean\tstd\tmin\tmax\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t\n", s.Name, s.Mean, s.Std, s.Min, s.Max)
	}
	return tw.Flush()
}
