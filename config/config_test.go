package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/lineup/config"
	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore map[string]string

func (m memStore) Get(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("setting '%s': %w", key, db.ErrNotSet)
	}
	return v, nil
}

func (m memStore) Set(key, value string) error {
	m[key] = value
	return nil
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, error) { return "", errors.New("disk on fire") }

func TestLoad(t *testing.T) {
	creds, err := config.Load(memStore{"space_id": "abc", "access_token": "xyz"})
	require.NoError(t, err)
	assert.Equal(t, config.Credentials{SpaceID: "abc", AccessToken: "xyz"}, creds)
}

func TestLoadMissing(t *testing.T) {
	for name, store := range map[string]memStore{
		"empty":        {},
		"no token":     {"space_id": "abc"},
		"no space":     {"access_token": "xyz"},
		"blank values": {"space_id": "", "access_token": "xyz"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(store)
			assert.ErrorIs(t, err, config.ErrMissingCredentials)
			assert.ErrorIs(t, err, failure.ErrConfig)
		})
	}
}

func TestLoadStoreError(t *testing.T) {
	_, err := config.Load(brokenStore{})
	assert.ErrorIs(t, err, failure.ErrConfig)
	assert.NotErrorIs(t, err, config.ErrMissingCredentials)
}

func TestSaveThenLoad(t *testing.T) {
	store := memStore{}
	require.NoError(t, config.Save(store, config.Credentials{SpaceID: "abc", AccessToken: "xyz"}))

	creds, err := config.Load(store)
	require.NoError(t, err)
	assert.Equal(t, "abc", creds.SpaceID)
	assert.Equal(t, "xyz", creds.AccessToken)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("space_id: abc\naccess_token: xyz\n"), 0600))

	creds, err := config.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Credentials{SpaceID: "abc", AccessToken: "xyz"}, creds)
}

func TestReadFileIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("space_id: abc\n"), 0600))

	_, err := config.ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := config.ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
