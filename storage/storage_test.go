package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsorbit-api/storage"
)

func TestLocalStoreSaveReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewLocalStore(dir, "/uploads/")

	url, err := store.Save("a.jpg", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := storage.NewLocalStore(dir, "/uploads")

	_, err := store.Save("b.jpg", []byte("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "b.jpg"))
	assert.NoError(t, err)
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, storage.AllowedExtension("photo.jpg"))
	assert.True(t, storage.AllowedExtension("PHOTO.JPEG"))
	assert.True(t, storage.AllowedExtension("logo.png"))
	assert.False(t, storage.AllowedExtension("notes.pdf"))
	assert.False(t, storage.AllowedExtension("archive"))
}

func TestObjectNameIsUnique(t *testing.T) {
	a := storage.ObjectName(".jpg")
	b := storage.ObjectName(".jpg")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}
