package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `dataset:
  path: rentals.csv
analysis:
  thresholds: [0, 60, 120]
  scope: connect
metrics:
  sinks:
    - type: nop
store:
  enabled: true
logging:
  level: debug
`

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

/*
TestLoad_YAML loads a yaml config and applies defaults.

	Cases:
	- explicit values survive
	- dataset delimiter and store path default
*/
func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "rentals.csv", cfg.Dataset.Path)
	assert.Equal(t, ",", cfg.Dataset.Delimiter)
	assert.Equal(t, []int{0, 60, 120}, cfg.Analysis.Thresholds)
	assert.Equal(t, "connect", cfg.Analysis.Scope)
	assert.Len(t, cfg.Metrics.Sinks, 1)
	assert.Equal(t, "rentalgap.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

/*
TestLoad_Defaults verifies the default sweep when analysis is omitted.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", "dataset:\n  path: rentals.csv\n"))
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.Analysis.Scope)
	require.Len(t, cfg.Analysis.Thresholds, 11)
	assert.Equal(t, 0, cfg.Analysis.Thresholds[0])
	assert.Equal(t, 300, cfg.Analysis.Thresholds[10])
}

/*
TestLoad_EnvOverride applies RG_ environment overrides on top of the file.
*/
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RG_ANALYSIS__SCOPE", "all")
	t.Setenv("RG_DATASET__DELIMITER", ";")
	cfg, err := Load(writeConfig(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.Analysis.Scope)
	assert.Equal(t, ";", cfg.Dataset.Delimiter)
}

/*
TestLoad_Invalid rejects bad formats and bad values.

	Cases:
	- unsupported file extension
	- negative threshold
	- unknown scope
	- bad export extension
*/
func TestLoad_Invalid(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
	bad := "dataset:\n  path: rentals.csv\nanalysis:\n  thresholds: [-1]\n"
	if _, err := Load(writeConfig(t, "config.yaml", bad)); err == nil {
		t.Fatal("expected threshold error")
	}
	bad = "dataset:\n  path: rentals.csv\nanalysis:\n  scope: fleet\n"
	if _, err := Load(writeConfig(t, "config.yaml", bad)); err == nil {
		t.Fatal("expected scope error")
	}
	bad = "dataset:\n  path: rentals.csv\nexport:\n  path: out.xlsx\n"
	if _, err := Load(writeConfig(t, "config.yaml", bad)); err == nil {
		t.Fatal("expected export format error")
	}
}
