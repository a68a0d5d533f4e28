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

func TestRunStats_Plain(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runStats(&out, plainConfig(t), writeTestData(t))
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "ramp: 3 samples, 0 gaps")
	assert.Contains(t, got, "gapped: 4 samples, 2 gaps")
	assert.Contains(t, got, "min=0 max=2")
	assert.Contains(t, got, "min=0 max=3")
}

func TestRunStats_Table(t *testing.T) {
	t.Parallel()

	cfg := plainConfig(t)
	cfg.Output.Format = config.FormatTable

	var out bytes.Buffer

	err := runStats(&out, cfg, writeTestData(t))
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "SERIES")
	assert.Contains(t, got, "ramp")
	assert.Contains(t, got, "gapped")
}

func TestRunStats_AllGaps(t *testing.T) {
	t.Parallel()

	doc := `
series:
  - name: silent
    points:
      - {x: 0}
      - {x: 1}
`
	path := filepath.Join(t.TempDir(), "silent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer

	err := runStats(&out, plainConfig(t), path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no data")
}

func TestRunStats_LoadError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runStats(&out, plainConfig(t), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewStatsCommand_Execute(t *testing.T) {
	t.Parallel()

	cmd := NewStatsCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{writeTestData(t)})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "ramp")
}
