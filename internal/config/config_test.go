package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "_gen", cfg.Suffix)
	assert.Contains(t, cfg.Markers, "Phantom")
	assert.False(t, cfg.Verbose)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `suffix: _structkit
markers:
  - Ghost
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "structkit.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "_structkit", cfg.Suffix)
	assert.Equal(t, []string{"Ghost"}, cfg.Markers)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptySuffixRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "structkit.yaml"), []byte(`suffix: ""`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suffix")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "structkit.yaml"), []byte("suffix: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
}
