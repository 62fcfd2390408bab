package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

func testUser() *types.UserInfo {
	name := "Alex Chen"
	return &types.UserInfo{
		UserID: "u1",
		Email:  "alex@campus.edu",
		Name:   &name,
		Role:   types.RoleUser,
	}
}

func TestKeychainRoundTrip(t *testing.T) {
	kc := NewKeychain(filepath.Join(t.TempDir(), "keys"))

	require.NoError(t, kc.Save("t1", "r1", testUser()))

	access, refresh, user := kc.Load()
	assert.Equal(t, "t1", access)
	assert.Equal(t, "r1", refresh)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, types.RoleUser, user.Role)
}

func TestKeychainEntriesAreIndependent(t *testing.T) {
	dir := t.TempDir()
	kc := NewKeychain(dir)
	require.NoError(t, kc.Save("t1", "r1", testUser()))

	// Removing the user entry must not disturb the tokens.
	require.NoError(t, os.Remove(filepath.Join(dir, "user.json")))

	access, refresh, user := kc.Load()
	assert.Equal(t, "t1", access)
	assert.Equal(t, "r1", refresh)
	assert.Nil(t, user)
}

func TestKeychainCorruptUserEntry(t *testing.T) {
	dir := t.TempDir()
	kc := NewKeychain(dir)
	require.NoError(t, kc.Save("t1", "r1", testUser()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{broken"), 0o600))

	_, _, user := kc.Load()
	assert.Nil(t, user, "corrupt user entry should load as nil, not fail")
}

func TestKeychainSaveTokensKeepsUser(t *testing.T) {
	kc := NewKeychain(t.TempDir())
	require.NoError(t, kc.Save("t1", "r1", testUser()))

	require.NoError(t, kc.SaveTokens("t2", "r2"))

	access, refresh, user := kc.Load()
	assert.Equal(t, "t2", access)
	assert.Equal(t, "r2", refresh)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.UserID)
}

func TestKeychainClear(t *testing.T) {
	kc := NewKeychain(t.TempDir())
	require.NoError(t, kc.Save("t1", "r1", testUser()))

	require.NoError(t, kc.Clear())

	access, refresh, user := kc.Load()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.Nil(t, user)

	// Clearing an already-empty keychain is fine.
	require.NoError(t, kc.Clear())
}

func TestKeychainLoadFromMissingDir(t *testing.T) {
	kc := NewKeychain(filepath.Join(t.TempDir(), "never-created"))

	access, refresh, user := kc.Load()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.Nil(t, user)
}
