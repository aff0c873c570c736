package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndExists(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save("photo.jpg", strings.NewReader("image-bytes")))

	assert.True(t, s.Exists("photo.jpg"))

	data, err := os.ReadFile(s.Path("photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestLocalStorage_Delete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("photo.jpg", strings.NewReader("x")))
	require.NoError(t, s.Delete("photo.jpg"))
	assert.False(t, s.Exists("photo.jpg"))
}

func TestLocalStorage_DeleteMissingIsNotAnError(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete("never-stored.png"))
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/uploads"
	_, err := NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
