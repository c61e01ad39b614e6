package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// unset clears name for the test and restores it afterwards.
func unset(t *testing.T, name string) {
	t.Setenv(name, "")
	require.NoError(t, os.Unsetenv(name))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.1, cfg.DLF.Band)
	assert.Equal(t, 500, cfg.Search.MaxIterations)
	assert.Equal(t, 1e-4, cfg.Search.ErrorTol)
	assert.Equal(t, 4.0, cfg.Tube.SafetyFactor)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.LookupDir)
	assert.Empty(t, cfg.Thermo.Preset)
	assert.NoError(t, cfg.Validate())
}

func TestLoadLayers(t *testing.T) {
	unset(t, "BEAVERDET_SEARCH_MAX_ITERATIONS")
	unset(t, "BEAVERDET_LOOKUP_DIR")
	unset(t, "BEAVERDET_THERMO_PRESET")
	t.Setenv("BEAVERDET_DLF_BAND", "0.2")

	path := writeFile(t, "beaverdet.yaml", `
lookup_dir: /srv/tables
dlf:
  band: 0.15
log:
  level: debug
  format: console
tube:
  safety_factor: 3
thermo:
  preset: propane_air
`)
	env := writeFile(t, "test.env", "BEAVERDET_SEARCH_MAX_ITERATIONS=42\n")

	cfg, err := Load(path, env)
	require.NoError(t, err)
	assert.Equal(t, "/srv/tables", cfg.LookupDir)
	assert.Equal(t, 0.2, cfg.DLF.Band)
	assert.Equal(t, 42, cfg.Search.MaxIterations)
	assert.Equal(t, 3.0, cfg.Tube.SafetyFactor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "propane_air", cfg.Thermo.Preset)
}

func TestLoadWithoutFiles(t *testing.T) {
	unset(t, "BEAVERDET_DLF_BAND")
	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.DLF.Band)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	t.Setenv("BEAVERDET_DLF_BAND", "1.5")
	_, err = Load("")
	assert.ErrorIs(t, err, errs.ErrInvalidBandFraction)

	t.Setenv("BEAVERDET_DLF_BAND", "0.1")
	t.Setenv("BEAVERDET_TUBE_SAFETY_FACTOR", "0.5")
	_, err = Load("")
	assert.ErrorIs(t, err, errs.ErrSafetyFactorBelowOne)

	t.Setenv("BEAVERDET_TUBE_SAFETY_FACTOR", "4")
	t.Setenv("BEAVERDET_THERMO_PRESET", "methane_air")
	_, err = Load("")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
