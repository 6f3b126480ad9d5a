package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/levelc/logging"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levelc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
classes: prefabs
output: out
store:
  kind: badger
  path: out/db
compress: true
locale: fr-CA
log_level: debug
preload:
  ratio: 0.25
  frame: 20ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prefabs", cfg.Classes)
	assert.Equal(t, "levels", cfg.Sources)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, StoreConfig{Kind: "badger", Path: "out/db"}, cfg.Store)
	assert.True(t, cfg.Compress)
	assert.Equal(t, "fr-CA", cfg.Locale)
	assert.Equal(t, 0.25, cfg.Preload.Ratio)
	assert.Equal(t, 20*time.Millisecond, cfg.Preload.Frame)
	assert.NotNil(t, cfg.Logger())
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "output: from-env\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output)
}

func TestLoadMissing(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"store kind": "store: {kind: s3}\n",
		"ratio":      "preload: {ratio: 2}\n",
		"log level":  "log_level: chatty\n",
		"syntax":     "store: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	lvl, err := logging.ParseLevel(Default().LogLevel)
	require.NoError(t, err)
	assert.Equal(t, logging.INFO, lvl)
}
