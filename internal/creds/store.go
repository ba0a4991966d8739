package creds

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/muurk/radioctl/internal/logging"
)

// Account keys under the service entry. Username and password are two
// separate keychain items so either can be inspected or rotated in the
// platform's password manager.
const (
	usernameKey = "username"
	passwordKey = "password"
)

// ErrNotStored means the keychain holds no credential pair for the
// service. Callers decide whether to prompt or to fail.
var ErrNotStored = errors.New("no credentials stored")

// Store persists the console admin credentials in the operating system
// keychain: Keychain on macOS, Secret Service on Linux, Credential
// Manager on Windows. Nothing is ever written to the config file or
// logged.
type Store struct {
	// Service is the keychain service name the pair is filed under.
	Service string
}

// NewStore creates a Store filing credentials under the given service
// name.
func NewStore(service string) *Store {
	return &Store{Service: service}
}

// Credentials returns the stored pair. A pair with either half missing
// reports ErrNotStored; the keychain state is not modified.
func (s *Store) Credentials() (string, string, error) {
	username, err := keyring.Get(s.Service, usernameKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", "", ErrNotStored
		}
		return "", "", fmt.Errorf("reading username from keychain: %w", err)
	}

	password, err := keyring.Get(s.Service, passwordKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", "", ErrNotStored
		}
		return "", "", fmt.Errorf("reading password from keychain: %w", err)
	}

	if username == "" || password == "" {
		return "", "", ErrNotStored
	}
	return username, password, nil
}

// Save writes both halves of the pair. An empty half is rejected rather
// than stored, so a later Credentials cannot return a partial pair.
func (s *Store) Save(username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password must both be set")
	}

	if err := keyring.Set(s.Service, usernameKey, username); err != nil {
		return fmt.Errorf("storing username in keychain: %w", err)
	}
	if err := keyring.Set(s.Service, passwordKey, password); err != nil {
		return fmt.Errorf("storing password in keychain: %w", err)
	}

	logging.Info("Credentials stored in system keychain",
		logging.SecretField("password"))
	return nil
}

// Clear removes the pair. Halves that were never stored are not an
// error, so Clear is safe to repeat.
func (s *Store) Clear() error {
	if err := keyring.Delete(s.Service, usernameKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing username from keychain: %w", err)
	}
	if err := keyring.Delete(s.Service, passwordKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing password from keychain: %w", err)
	}

	logging.Info("Credentials removed from system keychain")
	return nil
}
