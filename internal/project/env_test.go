package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvOverrideHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALLCALC_HOME", dir)
	t.Setenv("WALLCALC_LOG_LEVEL", "debug")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, dir, e.Home)
	assert.Equal(t, "debug", e.LogLevel)

	paths := e.Paths()
	assert.Equal(t, filepath.Join(dir, "config.json"), paths.Config())
	assert.Equal(t, filepath.Join(dir, "catalog.json"), paths.Catalog())
	assert.Equal(t, filepath.Join(dir, "templates.json"), paths.Templates())
}

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("WALLCALC_HOME", "")
	t.Setenv("WALLCALC_LOG_LEVEL", "")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigDir(), e.Home)
	assert.Equal(t, ".wallcalc", filepath.Base(e.Home))
}
