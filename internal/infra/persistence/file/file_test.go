package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	store := NewStore(path)

	_, ok, err := store.Load("token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save("token", "abc123"))
	require.NoError(t, store.Save("emailVerificationStep", "verify"))

	value, ok, err := store.Load("token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", value)

	require.NoError(t, store.Remove("token"))
	_, ok, err = store.Load("token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	require.NoError(t, store.Remove("token"))
}

func TestStore_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	first := NewStore(path)
	require.NoError(t, first.Save("emailVerificationOtp", "123456"))
	require.NoError(t, first.Save("emailVerificationStep", "verify"))

	// A fresh instance reading the same file sees the persisted state.
	second := NewStore(path)
	otp, ok, err := second.Load("emailVerificationOtp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123456", otp)

	step, ok, err := second.Load("emailVerificationStep")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "verify", step)
}

func TestStore_CorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(path)
	_, _, err := store.Load("token")
	assert.Error(t, err)
}
