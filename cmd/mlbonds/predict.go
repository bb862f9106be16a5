package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/mlbonds/molfile"
	"github.com/rmera/mlbonds/predict"
)

type predictOptions struct {
	charge int
	outDir string
	sdf    string
}

func newPredictCmd(a *app) *cobra.Command {
	o := new(predictOptions)
	cmd := &cobra.Command{
		Use:   "predict FILE|DIR...",
		Short: "Predict the bonds of the molecules in xyz files",
		Long: `Predict the bonds of the molecules in the given xyz files, or in the xyz files
in the given directories, and write each as a V2000 connection table named
after the input file, next to it or in --out. With --sdf all the molecules are
written to one SD file instead ("-" for the standard output).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPredict(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.charge, "charge", 0, "net charge of the molecules")
	f.StringVar(&o.outDir, "out", "", "directory for the output files")
	f.StringVar(&o.sdf, "sdf", "", "write all molecules to this SD file")
	f.Int("workers", 0, "molecules processed concurrently (default: number of CPUs)")
	f.Bool("sdf-records", false, "end each connection table with M  END and $$$$")
	f.Float64("cutoff", 0, "maximum distance for candidate pairs, in A")
	addModelFlags(cmd)
	return cmd
}

func (a *app) runPredict(cmd *cobra.Command, o *predictOptions, args []string) error {
	files, err := xyzInputs(args)
	if err != nil {
		return err
	}
	P, err := a.predictor()
	if err != nil {
		return err
	}
	P.SetCharge(o.charge)
	results, batchErr := P.Batch(cmd.Context(), files, a.cfg.Batch.Workers)
	for _, r := range results {
		if r.Err == nil && r.Fragments > 1 {
			a.log.Info("molecule split in several fragments", zap.String("file", r.File), zap.Int("fragments", r.Fragments))
		}
	}
	var written int
	if o.sdf != "" {
		written, err = a.writeSDF(cmd.OutOrStdout(), o.sdf, results)
	} else {
		written, err = a.writeMolfiles(o.outDir, results)
	}
	a.log.Info("bonds predicted",
		zap.Int("files", len(files)),
		zap.Int("written", written),
		zap.Int("failed", len(files)-written))
	if err != nil {
		return err
	}
	return batchErr
}

func (a *app) writeSDF(stdout io.Writer, name string, results []predict.Result) (int, error) {
	out, err := output(name, stdout)
	if err != nil {
		return 0, err
	}
	var written int
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := molfile.WriteSDF(out, r.Molecule, r.Bonds); err != nil {
			out.Close()
			return written, err
		}
		written++
	}
	return written, out.Close()
}

func (a *app) writeMolfiles(dir string, results []predict.Result) (int, error) {
	write := molfile.Write
	if a.cfg.Output.SDF {
		write = molfile.WriteSDF
	}
	var written int
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		d := dir
		if d == "" {
			d = filepath.Dir(r.File)
		}
		name := filepath.Join(d, r.Molecule.Name()+".sdf")
		out, err := output(name, nil)
		if err != nil {
			return written, err
		}
		if err := write(out, r.Molecule, r.Bonds); err != nil {
			out.Close()
			return written, err
		}
		if err := out.Close(); err != nil {
			return written, err
		}
		a.log.Debug("written", zap.String("file", name), zap.Int("bonds", len(r.Bonds)))
		written++
	}
	return written, nil
}
