package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/models"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	return NewCredentialStore(path, logger.Nop())
}

func TestCredentialStore_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestCredentialStore_WriteThenRead(t *testing.T) {
	s := newTestStore(t)
	user := models.User{ID: "u-1", Email: "a@b.com", Name: "Alice", Role: "USER"}

	s.Write("sometoken", user)

	assert.Equal(t, "sometoken", s.Token())
	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
}

func TestCredentialStore_WriteReplacesBothFields(t *testing.T) {
	s := newTestStore(t)
	s.Write("first", models.User{ID: "u-1", Email: "a@b.com"})

	s.Write("second", models.User{ID: "u-2", Email: "c@d.com"})

	assert.Equal(t, "second", s.Token())
	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, "c@d.com", got.Email)
}

func TestCredentialStore_Clear(t *testing.T) {
	s := newTestStore(t)
	s.Write("sometoken", models.User{ID: "u-1"})

	s.Clear()

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestCredentialStore_ClearOnEmptyStore(t *testing.T) {
	s := newTestStore(t)
	// must not panic or log-spam on a missing file
	s.Clear()
	s.Clear()
}

func TestCredentialStore_MalformedRecordWipesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s := NewCredentialStore(path, logger.Nop())

	assert.Nil(t, s.User())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "corrupt store file should have been removed")
	assert.Empty(t, s.Token())
}

func TestCredentialStore_UnwritableDirectoryIsSwallowed(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	s := NewCredentialStore(filepath.Join(dir, "sub", "credentials.json"), logger.Nop())

	// must not panic; the store just stays empty
	s.Write("sometoken", models.User{ID: "u-1"})
	assert.Empty(t, s.Token())
}
