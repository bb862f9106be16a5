package main

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/features"
	"github.com/rmera/mlbonds/internal/config"
	"github.com/rmera/mlbonds/molfile"
)

// referenceOptions locate xyz files and their reference connection tables.
type referenceOptions struct {
	xyzDir string
	refDir string
	refExt string
}

func (o *referenceOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.xyzDir, "xyz", "", "directory with xyz files")
	f.StringVar(&o.refDir, "ref", "", "directory with the reference connection tables")
	f.StringVar(&o.refExt, "ref-ext", "sdf", "extension of the reference files")
	cmd.MarkFlagRequired("xyz")
	cmd.MarkFlagRequired("ref")
}

// reference is a molecule with its reference bonds.
type reference struct {
	file string
	mol  *chem.Molecule
	ref  *molfile.Record
}

// references reads each xyz file in o.xyzDir and the connection table with the
// same base name in o.refDir.
func (o *referenceOptions) references() ([]reference, error) {
	files, err := xyzInputs([]string{o.xyzDir})
	if err != nil {
		return nil, err
	}
	ret := make([]reference, 0, len(files))
	for _, name := range files {
		mol, err := chem.XYZFileRead(name)
		if err != nil {
			return nil, err
		}
		refName := filepath.Join(o.refDir, mol.Name()+"."+strings.TrimPrefix(o.refExt, "."))
		rec, err := molfile.ReadFile(refName)
		if err != nil {
			return nil, err
		}
		if len(rec.Symbols) != mol.Len() {
			return nil, errors.Newf("%s has %d atoms, %s has %d", refName, len(rec.Symbols), name, mol.Len())
		}
		ret = append(ret, reference{file: name, mol: mol, ref: rec})
	}
	return ret, nil
}

type datasetOptions struct {
	referenceOptions
	out string
}

func newDatasetCmd(a *app) *cobra.Command {
	o := new(datasetOptions)
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build a LIBSVM training set from xyz files and reference connection tables",
		Long: `For each xyz file in --xyz, read the connection table with the same base name
in --ref, and write the feature rows of the molecule labeled with the order of
the bond in the reference (0 for non-bonded pairs) in LIBSVM format. The
feature schema is written next to the output, so the trained model can be
checked against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDataset(o)
		},
	}
	o.addFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&o.out, "out", "train.libsvm", "output file")
	f.Float64("cutoff", 0, "maximum distance for candidate pairs, in A")
	return cmd
}

func (a *app) runDataset(o *datasetOptions) error {
	refs, err := o.references()
	if err != nil {
		return err
	}
	opts := a.cfg.FeatureOptions()
	tables := make([]*features.Table, 0, len(refs))
	var labels []float64
	for _, r := range refs {
		T, err := features.Build(r.mol, opts)
		if err != nil {
			return errors.Wrap(err, r.file)
		}
		l := features.Label(T, r.ref)
		a.log.Debug("labeled", zap.String("file", r.file), zap.Int("rows", len(l)))
		tables = append(tables, T)
		labels = append(labels, l...)
	}
	T, err := features.Concat(tables...)
	if err != nil {
		return err
	}
	out, err := chem.CreateFile(o.out)
	if err != nil {
		return err
	}
	if err := features.WriteLibSVM(out, T, labels); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := features.SaveSchema(o.out+config.SchemaSuffix, T.Schema()); err != nil {
		return err
	}
	a.log.Info("training set written",
		zap.String("file", o.out),
		zap.Int("molecules", len(tables)),
		zap.Int("rows", T.Len()))
	return nil
}
