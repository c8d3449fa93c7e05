// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshWorkspaceRemovedOnClose(t *testing.T) {
	ws, err := New(Options{})
	require.NoError(t, err)

	info, err := os.Stat(ws.Path())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	ws.Close()

	_, err = os.Stat(ws.Path())
	assert.True(t, os.IsNotExist(err), "fresh workspace should be gone after Close")
}

func TestFreshWorkspaceKept(t *testing.T) {
	ws, err := New(Options{Keep: true})
	require.NoError(t, err)
	defer os.RemoveAll(ws.Path())

	ws.Close()

	_, err = os.Stat(ws.Path())
	assert.NoError(t, err, "Keep should preserve the workspace")
}

func TestCustomDirSurvivesClose(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	ws, err := New(Options{Dir: dir})
	require.NoError(t, err)

	_, err = os.Stat(dir)
	require.NoError(t, err, "custom dir should be created")

	ws.Close()

	_, err = os.Stat(dir)
	assert.NoError(t, err, "custom dir should survive Close by default")
}

func TestCustomDirRemovedWhenRequested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	ws, err := New(Options{Dir: dir, RemoveCustom: true})
	require.NoError(t, err)

	ws.Close()

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestCustomDirReused(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0o644))

	ws, err := New(Options{Dir: dir})
	require.NoError(t, err)
	defer ws.Close()

	assert.Equal(t, dir, ws.Path())
	_, err = os.Stat(marker)
	assert.NoError(t, err, "existing content should be untouched")
}

func TestSaveFile(t *testing.T) {
	ws, err := New(Options{})
	require.NoError(t, err)
	defer ws.Close()

	path, err := ws.SaveFile("deck.pptx", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.Path(), "deck.pptx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestSaveFileStripsDirectories(t *testing.T) {
	ws, err := New(Options{})
	require.NoError(t, err)
	defer ws.Close()

	path, err := ws.SaveFile("../../escape.pptx", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.Path(), "escape.pptx"), path)
}

func TestNewFailsOnBadCustomDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := New(Options{Dir: filepath.Join(file, "sub")})
	assert.Error(t, err, "creating a dir under a regular file should fail")
}
