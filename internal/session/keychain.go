package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crcs-platform/campusctl/internal/errors"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// Durable entry names. The three entries are independent on purpose: a
// partially written or corrupted entry must degrade to "not authenticated"
// rather than poison the others.
const (
	accessTokenFile  = "access_token"
	refreshTokenFile = "refresh_token"
	userFile         = "user.json"
)

// Keychain persists session credentials under the campusctl home directory.
//
// Tokens are bearer secrets; files are written 0600 inside a 0700 directory.
type Keychain struct {
	dir string
}

// NewKeychain creates a keychain rooted at dir.
func NewKeychain(dir string) *Keychain {
	return &Keychain{dir: dir}
}

// Dir returns the keychain directory.
func (k *Keychain) Dir() string {
	return k.dir
}

// Save writes all three entries. The user entry is serialized as JSON.
func (k *Keychain) Save(access, refresh string, user *types.UserInfo) error {
	if err := k.SaveTokens(access, refresh); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.NewKeychainWriteError(userFile, err)
	}
	return k.write(userFile, data)
}

// SaveTokens rewrites the token pair, leaving the stored user untouched.
// The refresh path of the request pipeline uses this after rotating tokens.
func (k *Keychain) SaveTokens(access, refresh string) error {
	if err := k.write(accessTokenFile, []byte(access)); err != nil {
		return err
	}
	return k.write(refreshTokenFile, []byte(refresh))
}

// Load reads whatever entries exist. Missing or corrupt entries come back
// as zero values; Load never fails. Callers decide what a partial result
// means (rehydration treats anything short of token+user as unauthenticated).
func (k *Keychain) Load() (access, refresh string, user *types.UserInfo) {
	if data, err := os.ReadFile(filepath.Join(k.dir, accessTokenFile)); err == nil {
		access = string(data)
	}
	if data, err := os.ReadFile(filepath.Join(k.dir, refreshTokenFile)); err == nil {
		refresh = string(data)
	}
	if data, err := os.ReadFile(filepath.Join(k.dir, userFile)); err == nil {
		var u types.UserInfo
		if json.Unmarshal(data, &u) == nil && u.UserID != "" {
			user = &u
		}
	}
	return access, refresh, user
}

// Clear removes all three entries. Missing entries are not an error.
func (k *Keychain) Clear() error {
	var firstErr error
	for _, name := range []string{accessTokenFile, refreshTokenFile, userFile} {
		err := os.Remove(filepath.Join(k.dir, name))
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = errors.NewKeychainWriteError(name, err)
		}
	}
	return firstErr
}

func (k *Keychain) write(name string, data []byte) error {
	if err := os.MkdirAll(k.dir, 0o700); err != nil {
		return errors.NewKeychainWriteError(k.dir, err)
	}
	if err := os.WriteFile(filepath.Join(k.dir, name), data, 0o600); err != nil {
		return errors.NewKeychainWriteError(name, err)
	}
	return nil
}
