package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// An explicit but missing config file is an error.
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, DefaultPrecision, cfg.Output.Precision)
	assert.Empty(t, cfg.Series.Default)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	content := `
output:
  format: plain
  color: false
  precision: 3
series:
  default: temperature
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatPlain, cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "temperature", cfg.Series.Default)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RANGECURVE_OUTPUT_FORMAT", "plain")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, cfg.Output.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()

	write := func(content string) string {
		path := filepath.Join(dir, "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	_, err := Load(write("output:\n  format: fancy\n"))
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = Load(write("output:\n  precision: 99\n"))
	assert.ErrorIs(t, err, ErrBadPrecision)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Config{Output: OutputConfig{Format: FormatTable, Precision: DefaultPrecision}}
	assert.NoError(t, cfg.Validate())

	cfg.Output.Precision = -1
	assert.ErrorIs(t, cfg.Validate(), ErrBadPrecision)
}
