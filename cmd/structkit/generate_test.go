package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"client.go", "client_gen.go", "client_test.go", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package x\n"), 0644))
	}

	files, err := collectFiles([]string{dir}, "_gen")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "client.go"), files[0])
}

func TestCollectFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.go")
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0644))

	files, err := collectFiles([]string{path}, "_gen")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	_, err := collectFiles([]string{"does-not-exist"}, "_gen")
	require.Error(t, err)
}
