// Package config loads the settings of the mlbonds command from an optional
// YAML file, MLBONDS_* environment variables and command line flags, in
// increasing order of priority.
package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/rmera/mlbonds/features"
	"github.com/rmera/mlbonds/internal/logging"
)

// EnvPrefix is the prefix of the environment variables read, e.g. MLBONDS_MODEL_PATH
// for model.path.
const EnvPrefix = "MLBONDS"

// Model kinds.
const (
	ModelXGBoost  = "xgboost"
	ModelCovalent = "covalent"
)

// SchemaSuffix is appended to the model path to find its schema when
// model.schema is not set.
const SchemaSuffix = ".schema.yaml"

type Features struct {
	Cutoff    float64 `mapstructure:"cutoff"`
	Neighbors int     `mapstructure:"neighbors"`
	Pad       bool    `mapstructure:"pad"`
}

type Model struct {
	Kind    string `mapstructure:"kind"`
	Path    string `mapstructure:"path"`
	Schema  string `mapstructure:"schema"`
	Threads int    `mapstructure:"threads"`
}

type Batch struct {
	Workers int `mapstructure:"workers"`
}

type Output struct {
	SDF bool `mapstructure:"sdf"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds all the settings.
type Config struct {
	Features Features `mapstructure:"features"`
	Model    Model    `mapstructure:"model"`
	Batch    Batch    `mapstructure:"batch"`
	Output   Output   `mapstructure:"output"`
	Log      Log      `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("features.cutoff", features.DefaultCutoff)
	v.SetDefault("features.neighbors", features.DefaultNeighbors)
	v.SetDefault("features.pad", true)
	v.SetDefault("model.kind", ModelXGBoost)
	v.SetDefault("model.path", "xgb.model")
	v.SetDefault("model.schema", "")
	v.SetDefault("model.threads", 1)
	v.SetDefault("batch.workers", runtime.NumCPU())
	v.SetDefault("output.sdf", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
}

// Load returns the configuration from the YAML file path (none if path is empty),
// the environment and the flags in fs that have been set. bindings maps config
// keys to flag names; it can be nil. The result is validated.
func Load(path string, fs *pflag.FlagSet, bindings map[string]string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}
	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			return nil, errors.Newf("no flag %q for %s", flag, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "binding flag %s", flag)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error describing every invalid setting in cfg, or nil.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Features.Cutoff <= 0 {
		errs = append(errs, errors.Newf("features.cutoff must be positive, got %g", cfg.Features.Cutoff))
	}
	if cfg.Features.Neighbors <= 0 {
		errs = append(errs, errors.Newf("features.neighbors must be positive, got %d", cfg.Features.Neighbors))
	}
	switch cfg.Model.Kind {
	case ModelXGBoost:
		if cfg.Model.Path == "" {
			errs = append(errs, errors.New("model.path is required for xgboost models"))
		}
	case ModelCovalent:
	default:
		errs = append(errs, errors.Newf("unknown model.kind %q", cfg.Model.Kind))
	}
	if cfg.Model.Threads <= 0 {
		errs = append(errs, errors.Newf("model.threads must be positive, got %d", cfg.Model.Threads))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if f := cfg.Log.Format; f != logging.FormatConsole && f != logging.FormatJSON {
		errs = append(errs, errors.Newf("unknown log.format %q", f))
	}
	if err := multierr.Combine(errs...); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// FeatureOptions returns the feature extraction options in cfg.
func (cfg *Config) FeatureOptions() *features.Options {
	O := features.DefaultOptions()
	O.Cutoff(cfg.Features.Cutoff)
	O.Neighbors(cfg.Features.Neighbors)
	O.Pad(cfg.Features.Pad)
	return O
}

// SchemaPath returns the file with the feature schema of the model: model.schema
// if set, otherwise the model path plus SchemaSuffix if that file exists, and
// an empty string if not.
func (cfg *Config) SchemaPath() string {
	if cfg.Model.Schema != "" {
		return cfg.Model.Schema
	}
	name := cfg.Model.Path + SchemaSuffix
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return ""
}
