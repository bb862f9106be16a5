package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/mlbonds/features"
	"github.com/rmera/mlbonds/internal/config"
	"github.com/rmera/mlbonds/internal/logging"
	"github.com/rmera/mlbonds/predict"
)

// Version is set at build time.
var Version = "dev"

// flagBindings maps configuration keys to the flags that override them. Only
// the flags defined by the running command are bound.
var flagBindings = map[string]string{
	"log.level":       "log-level",
	"log.format":      "log-format",
	"batch.workers":   "workers",
	"model.kind":      "model-kind",
	"model.path":      "model",
	"model.schema":    "schema",
	"model.threads":   "threads",
	"output.sdf":      "sdf-records",
	"features.cutoff": "cutoff",
}

// app holds what every command needs once the configuration is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "mlbonds",
		Short:         "Machine-learned bond perception for xyz geometries",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", logging.FormatConsole, "log format (console, json)")
	root.AddCommand(
		newPredictCmd(a),
		newFeaturesCmd(a),
		newDatasetCmd(a),
		newEvalCmd(a),
		newPlotCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	bindings := make(map[string]string)
	for key, flag := range flagBindings {
		if cmd.Flags().Lookup(flag) != nil {
			bindings[key] = flag
		}
	}
	cfg, err := config.Load(a.configPath, cmd.Flags(), bindings)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log, err = logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.log.Debug("configuration loaded", zap.String("command", cmd.Name()), zap.Any("config", cfg))
	return nil
}

// addModelFlags adds the flags that select the bond classifier.
func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("model", "", "XGBoost model file")
	f.String("model-kind", "", "classifier: xgboost or covalent")
	f.String("schema", "", "feature schema of the model")
	f.Int("threads", 1, "threads used by the model")
}

// classifier returns the configured bond classifier, and the feature schema
// it was trained with, if known.
func (a *app) classifier() (predict.Classifier, *features.Schema, error) {
	var schema *features.Schema
	if name := a.cfg.SchemaPath(); name != "" {
		s, err := features.LoadSchema(name)
		if err != nil {
			return nil, nil, err
		}
		schema = s
	}
	switch a.cfg.Model.Kind {
	case config.ModelCovalent:
		a.log.Info("using covalent radii to assign bonds, no model is loaded")
		return predict.NewCovalent(), schema, nil
	case config.ModelXGBoost:
		model, err := predict.LoadXGBoost(a.cfg.Model.Path, a.cfg.Model.Threads)
		if err != nil {
			return nil, nil, err
		}
		a.log.Info("model loaded",
			zap.String("path", a.cfg.Model.Path),
			zap.Int("features", model.Features()),
			zap.Int("classes", model.Classes()))
		return model, schema, nil
	}
	return nil, nil, errors.Newf("unknown model kind %q", a.cfg.Model.Kind)
}

// predictor returns a Predictor with the configured classifier and options.
func (a *app) predictor() (*predict.Predictor, error) {
	model, schema, err := a.classifier()
	if err != nil {
		return nil, err
	}
	P := predict.NewPredictor(model, a.cfg.FeatureOptions())
	P.SetLogger(a.log.Named("predict"))
	if schema != nil {
		P.SetSchema(schema)
	}
	return P, nil
}
