package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store, err := NewFileTokenStore(filepath.Join(t.TempDir(), "kinea"))
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store holds no token")

	require.NoError(t, store.Save("abc123"))

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStoreClearIsIdempotent(t *testing.T) {
	store, err := NewFileTokenStore(filepath.Join(t.TempDir(), "kinea"))
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
