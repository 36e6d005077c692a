package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutReadRemove(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	path, err := store.Put([]byte("hello world"), "Greeting.TXT")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".txt"), "stored name keeps a normalized extension: %s", path)

	data, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again is not an error.
	assert.NoError(t, store.Remove(path))
}

func TestStorePutDeduplicatesByContent(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	p1, err := store.Put([]byte("same bytes"), "a.txt")
	require.NoError(t, err)
	p2, err := store.Put([]byte("same bytes"), "b.txt")
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "identical content with the same extension shares one file")

	p3, err := store.Put([]byte("other bytes"), "a.txt")
	require.NoError(t, err)
	assert.NotEqual(t, p1, p3)
}

func TestStorePutWithoutExtension(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	path, err := store.Put([]byte("x"), "noext")
	require.NoError(t, err)
	assert.Equal(t, "", filepath.Ext(path))
}
