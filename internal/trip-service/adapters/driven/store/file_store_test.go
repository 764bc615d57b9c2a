package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingKeyIsEmpty(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	v, err := fs.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSetGetDelete(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Set("authToken", "tok-1"))
	v, err := fs.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	require.NoError(t, fs.Delete("authToken"))
	v, err = fs.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	// Deleting an absent key is a no-op.
	require.NoError(t, fs.Delete("authToken"))
}

func TestStateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	fs, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Set("authToken", "tok-1"))
	require.NoError(t, fs.Set("userLocation", "Dallas, TX"))

	reopened, err := New(dir)
	require.NoError(t, err)

	v, err := reopened.Get("authToken")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)
	v, err = reopened.Get("userLocation")
	require.NoError(t, err)
	assert.Equal(t, "Dallas, TX", v)
}

func TestStateFilePermissions(t *testing.T) {
	dir := t.TempDir()

	fs, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Set("authToken", "tok-1"))

	info, err := os.Stat(filepath.Join(dir, stateFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCorruptStateFileRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o600))

	_, err := New(dir)
	assert.Error(t, err)
}
