// Package config loads the content API credentials from the settings store.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amonks/lineup/db"
	"github.com/amonks/lineup/failure"
)

// Keys in the settings store.
const (
	KeySpaceID     = "space_id"
	KeyAccessToken = "access_token"
)

var ErrMissingCredentials = errors.New("API-nycklar saknas.")

type Credentials struct {
	SpaceID     string `yaml:"space_id"`
	AccessToken string `yaml:"access_token"`
}

type Getter interface {
	Get(key string) (string, error)
}

type Setter interface {
	Set(key, value string) error
}

// Load reads both credentials. If either is missing or empty it returns a
// config failure wrapping ErrMissingCredentials, before anything touches the
// network.
func Load(store Getter) (Credentials, error) {
	spaceID, err := get(store, KeySpaceID)
	if err != nil {
		return Credentials{}, err
	}
	accessToken, err := get(store, KeyAccessToken)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{SpaceID: spaceID, AccessToken: accessToken}, nil
}

func get(store Getter, key string) (string, error) {
	v, err := store.Get(key)
	if err != nil && !errors.Is(err, db.ErrNotSet) {
		return "", failure.Config(fmt.Errorf("error reading '%s': %w", key, err))
	}
	if v == "" {
		return "", failure.Config(fmt.Errorf("%w ('%s' is not set)", ErrMissingCredentials, key))
	}
	return v, nil
}

// Save writes both credentials to the store.
func Save(store Setter, creds Credentials) error {
	if err := store.Set(KeySpaceID, creds.SpaceID); err != nil {
		return err
	}
	if err := store.Set(KeyAccessToken, creds.AccessToken); err != nil {
		return err
	}
	return nil
}

// ReadFile decodes credentials from a yaml file like
//
//	space_id: abc123
//	access_token: xyz789
func ReadFile(path string) (Credentials, error) {
	file, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("error opening '%s': %w", path, err)
	}
	defer file.Close()

	var creds Credentials
	if err := yaml.NewDecoder(file).Decode(&creds); err != nil {
		return Credentials{}, fmt.Errorf("error decoding '%s': %w", path, err)
	}
	if creds.SpaceID == "" || creds.AccessToken == "" {
		return Credentials{}, fmt.Errorf("'%s' must set both %s and %s", path, KeySpaceID, KeyAccessToken)
	}
	return creds, nil
}
