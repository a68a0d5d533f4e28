package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/rangecurve/internal/config"
)

const testDataYAML = `
series:
  - name: ramp
    points:
      - {x: 0, y: 0}
      - {x: 1, y: 1}
      - {x: 2, y: 2}
  - name: gapped
    points:
      - {x: 0, y: 0}
      - {x: 1}
      - {x: 2}
      - {x: 3, y: 3}
`

// plainConfig turns off tables and color so output assertions stay simple.
func plainConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Output: config.OutputConfig{
			Format:    config.FormatPlain,
			Color:     false,
			Precision: config.DefaultPrecision,
		},
	}
}

func writeTestData(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDataYAML), 0o600))

	return path
}

func TestRunQuery_Interpolated(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runQuery(&out, plainConfig(t), writeTestData(t), "ramp", 0.5, 1.5)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "min=0.5")
	assert.Contains(t, out.String(), "max=1.5")
}

func TestRunQuery_GapSuppressesBounds(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runQuery(&out, plainConfig(t), writeTestData(t), "gapped", 0.5, 2.5)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no data")
}

func TestRunQuery_DefaultsToFirstSeries(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runQuery(&out, plainConfig(t), writeTestData(t), "", 0, 2)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ramp")
}

func TestRunQuery_ConfiguredDefaultSeries(t *testing.T) {
	t.Parallel()

	cfg := plainConfig(t)
	cfg.Series.Default = "gapped"

	var out bytes.Buffer

	err := runQuery(&out, cfg, writeTestData(t), "", 0, 3)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "gapped")
}

func TestRunQuery_SeriesNotFound(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runQuery(&out, plainConfig(t), writeTestData(t), "nope", 0, 1)
	assert.ErrorIs(t, err, ErrSeriesNotFound)
}

func TestRunQuery_InvertedInterval(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runQuery(&out, plainConfig(t), writeTestData(t), "ramp", 2, 1)
	assert.ErrorIs(t, err, ErrInvertedInterval)
}

func TestRunQuery_TableFormat(t *testing.T) {
	t.Parallel()

	cfg := plainConfig(t)
	cfg.Output.Format = config.FormatTable

	var out bytes.Buffer

	err := runQuery(&out, cfg, writeTestData(t), "ramp", 0, 2)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "SERIES")
	assert.Contains(t, out.String(), "ramp")
}

func TestNewQueryCommand_Execute(t *testing.T) {
	t.Parallel()

	cmd := NewQueryCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{writeTestData(t), "--from", "0.5", "--to", "1.5", "--name", "ramp"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ramp")
}

func TestNewQueryCommand_RequiresBounds(t *testing.T) {
	t.Parallel()

	cmd := NewQueryCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{writeTestData(t)})

	assert.Error(t, cmd.Execute())
}
