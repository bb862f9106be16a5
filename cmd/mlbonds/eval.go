package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/mlbonds/predict"
)

func newEvalCmd(a *app) *cobra.Command {
	o := new(referenceOptions)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compare predicted bonds with reference connection tables",
		Long: `Predict the bonds of each xyz file in --xyz and compare them, pair by pair,
with the connection table with the same base name in --ref. The accuracy of
the predicted bond orders, and the precision and recall of the bonds, are
printed for the whole set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(cmd, o)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().Float64("cutoff", 0, "maximum distance for candidate pairs, in A")
	addModelFlags(cmd)
	return cmd
}

func (a *app) runEval(cmd *cobra.Command, o *referenceOptions) error {
	refs, err := o.references()
	if err != nil {
		return err
	}
	P, err := a.predictor()
	if err != nil {
		return err
	}
	var total predict.Evaluation
	for _, r := range refs {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		E, err := P.Evaluate(r.mol, r.ref)
		if err != nil {
			return errors.Wrap(err, r.file)
		}
		total.Add(E)
	}
	a.log.Info("evaluation finished",
		zap.Int("molecules", len(refs)),
		zap.Int("pairs", total.Pairs),
		zap.Int("correct", total.Correct),
		zap.Float64("accuracy", total.Accuracy()),
		zap.Float64("precision", total.Precision()),
		zap.Float64("recall", total.Recall()))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "accuracy=%.2f%% (%d/%d correct) precision=%.2f%% recall=%.2f%%\n",
		100*total.Accuracy(), total.Correct, total.Pairs, 100*total.Precision(), 100*total.Recall())
	return err
}
