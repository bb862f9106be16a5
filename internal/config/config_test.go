package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(Te *testing.T) {
	cfg, err := Load("", nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 3.0, cfg.Features.Cutoff)
	assert.Equal(Te, 3, cfg.Features.Neighbors)
	assert.True(Te, cfg.Features.Pad)
	assert.Equal(Te, ModelXGBoost, cfg.Model.Kind)
	assert.Equal(Te, "xgb.model", cfg.Model.Path)
	assert.Equal(Te, 1, cfg.Model.Threads)
	assert.Equal(Te, runtime.NumCPU(), cfg.Batch.Workers)
	assert.False(Te, cfg.Output.SDF)
	assert.Equal(Te, "info", cfg.Log.Level)
	assert.Equal(Te, "console", cfg.Log.Format)

	O := cfg.FeatureOptions()
	assert.Equal(Te, 3.0, O.Cutoff())
	assert.Equal(Te, 3, O.Neighbors())
	assert.True(Te, O.Pad())
}

func TestFileEnvAndFlags(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "mlbonds.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(`
features:
  neighbors: 4
  pad: false
model:
  kind: covalent
log:
  level: debug
`), 0o644))
	Te.Setenv("MLBONDS_FEATURES_CUTOFF", "2.5")
	Te.Setenv("MLBONDS_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-format", "console", "")
	fs.Int("workers", 0, "")
	require.NoError(Te, fs.Parse([]string{"--log-format", "json"}))

	cfg, err := Load(name, fs, map[string]string{"log.format": "log-format", "batch.workers": "workers"})
	require.NoError(Te, err)
	assert.Equal(Te, 4, cfg.Features.Neighbors)
	assert.False(Te, cfg.Features.Pad)
	assert.Equal(Te, 2.5, cfg.Features.Cutoff)
	assert.Equal(Te, ModelCovalent, cfg.Model.Kind)
	assert.Equal(Te, "warn", cfg.Log.Level)
	assert.Equal(Te, "json", cfg.Log.Format)
	assert.Equal(Te, runtime.NumCPU(), cfg.Batch.Workers, "unset flags don't override defaults")

	_, err = Load(name, fs, map[string]string{"log.format": "nope"})
	assert.Error(Te, err)
	_, err = Load(filepath.Join(dir, "missing.yaml"), nil, nil)
	assert.Error(Te, err)
}

func TestValidate(Te *testing.T) {
	cfg, err := Load("", nil, nil)
	require.NoError(Te, err)
	bad := *cfg
	bad.Features.Cutoff = 0
	bad.Model.Kind = "svm"
	bad.Log.Level = "loud"
	err = bad.Validate()
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "features.cutoff")
	assert.Contains(Te, err.Error(), "svm")
	assert.Contains(Te, err.Error(), "loud")

	bad = *cfg
	bad.Model.Path = ""
	assert.Error(Te, bad.Validate())
	bad.Model.Kind = ModelCovalent
	assert.NoError(Te, bad.Validate())
}

func TestSchemaPath(Te *testing.T) {
	dir := Te.TempDir()
	cfg := &Config{Model: Model{Path: filepath.Join(dir, "xgb.model")}}
	assert.Equal(Te, "", cfg.SchemaPath())
	require.NoError(Te, os.WriteFile(cfg.Model.Path+SchemaSuffix, []byte("version: 1\n"), 0o644))
	assert.Equal(Te, cfg.Model.Path+SchemaSuffix, cfg.SchemaPath())
	cfg.Model.Schema = "other.yaml"
	assert.Equal(Te, "other.yaml", cfg.SchemaPath())
}
