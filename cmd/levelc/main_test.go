package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/levelc/config"
)

func setup(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvPath, "")

	cfg := fmt.Sprintf(`sources: %s
store:
  kind: dir
  path: %s
compress: true
log_level: error
%s`, filepath.Join(dir, "levels"), filepath.Join(dir, "build"), extra)
	require.NoError(t, os.WriteFile("levelc.yaml", []byte(cfg), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execRootCmd(args, &out)
	return out.String(), err
}

func TestCompileBuiltinLevels(t *testing.T) {
	setup(t, "")

	out, err := run(t, "compile")
	require.NoError(t, err, out)
	assert.Contains(t, out, "castle: 9 items")
	assert.Contains(t, out, "intro: 2 items")

	out, err = run(t, "store", "ls")
	require.NoError(t, err, out)
	assert.Regexp(t, `castle\t\d+\tzstd`, out)
	assert.Regexp(t, `intro\t\d+\tzstd`, out)

	out, err = run(t, "dump", "castle")
	require.NoError(t, err, out)
	assert.Contains(t, out, `level "castle" 2048x768 version 0.9.0, 9 items`)
	assert.Contains(t, out, `layer 1 action_layer 2048x768 tag "gameplay"`)
	assert.Contains(t, out, "lever")
	assert.Contains(t, out, "targets: item list [item [")
	assert.Contains(t, out, `label: string "Castle gate"`)
}

func TestLoadTranslatesAndCollectsResources(t *testing.T) {
	setup(t, "locale: fr\n")

	_, err := run(t, "compile", "intro")
	require.NoError(t, err)

	out, err := run(t, "load", "intro")
	require.NoError(t, err, out)
	assert.Contains(t, out, "intro: 2 items in 1 layers")
	assert.Contains(t, out, "font font/fixed_bold.ttf")
	assert.Contains(t, out, "music music/intro.ogg")

	_, err = run(t, "load", "cellar")
	assert.Error(t, err)
}

func TestStoreGetAndRemove(t *testing.T) {
	dir := setup(t, "")

	_, err := run(t, "compile", "castle")
	require.NoError(t, err)

	file := filepath.Join(dir, "castle.cl")
	out, err := run(t, "store", "get", "castle", "-o", file)
	require.NoError(t, err, out)

	out, err = run(t, "dump", "--file", file)
	require.NoError(t, err, out)
	assert.Contains(t, out, `level "castle"`)

	_, err = run(t, "store", "rm", "castle")
	require.NoError(t, err)
	out, err = run(t, "store", "ls")
	require.NoError(t, err)
	assert.NotContains(t, out, "castle")
}

func TestCheckReportsProblems(t *testing.T) {
	dir := setup(t, "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "levels"), 0o755))
	bad := `{
  "name": "broken",
  "width": 10,
  "height": 10,
  "layers": [{
    "class": "action_layer", "width": 10, "height": 10,
    "items": [
      {"class": "lever", "id": "a", "fields": {"target": {"type": "item", "value": "ghost"}}},
      {"class": "relay", "id": "b", "fields": {"targets": {"type": "item", "list": true, "value": []}}},
      {"class": "statue"}
    ]
  }]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels", "broken.json"), []byte(bad), 0o644))

	out, err := run(t, "check")
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "item a: error: There is no item with such identifier. (ghost)")
	assert.Contains(t, out, "item #2: error: There is no class with such name. (statue)")
	assert.Contains(t, out, "a relay needs at least one target")

	_, err = run(t, "compile")
	assert.Error(t, err)
	_, err = os.Stat(filepath.Join(dir, "build", "broken.cl"))
	assert.True(t, os.IsNotExist(err))
}

func TestCheckBuiltinLevels(t *testing.T) {
	setup(t, "")
	out, err := run(t, "check", "castle", "intro")
	require.NoError(t, err, out)
	assert.Contains(t, out, "castle: ok")
	assert.Contains(t, out, "intro: ok")
}

func TestStampsSkipUnchangedSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "castle.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	s := stamps{}
	assert.True(t, s.changed(path), "first sight")
	assert.False(t, s.changed(path), "same time")

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	assert.True(t, s.changed(path), "touched")
	assert.False(t, s.changed(path))

	require.NoError(t, os.Remove(path))
	assert.True(t, s.changed(path), "removed")
	assert.NotContains(t, s, path)
}
