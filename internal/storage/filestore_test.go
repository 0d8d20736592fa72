package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveAndRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	objectID, err := store.Save(strings.NewReader("report body"), ".pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(objectID, ".pdf"))

	data, err := os.ReadFile(store.Path(objectID))
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))

	require.NoError(t, store.Remove(objectID))
	_, err = os.Stat(store.Path(objectID))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine
	assert.NoError(t, store.Remove(objectID))
}

func TestFileStoreUniqueObjectIDs(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(strings.NewReader("a"), ".txt")
	require.NoError(t, err)
	b, err := store.Save(strings.NewReader("b"), ".txt")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
