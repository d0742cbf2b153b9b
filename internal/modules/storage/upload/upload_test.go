package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contents string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestSaveAndRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save(fileHeader(t, "episode.mp3", "audio-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, URLPrefix+"/"))
	assert.True(t, strings.HasSuffix(url, ".mp3"))
	assert.True(t, store.Exists(url))

	data, err := os.ReadFile(filepath.Join(store.Dir(), filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	require.NoError(t, store.Remove(url))
	assert.False(t, store.Exists(url))
}

func TestSave_GeneratedNamesNeverCollide(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(fileHeader(t, "cover.png", "a"))
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "cover.png", "b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSave_UnsafeExtensionFallsBack(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save(fileHeader(t, "weird.name with spaces!", "x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".dat"))
}

func TestRemove_RejectsPathTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	// Base resolution confines removal to the store directory; a dotdot
	// leaf is rejected outright.
	assert.Error(t, store.Remove("/uploads/safe.mp3/.."))
	assert.Error(t, store.Remove(""))
}

func TestExists_UnknownURL(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	assert.False(t, store.Exists("/uploads/nope.mp3"))
	assert.False(t, store.Exists(""))
}
